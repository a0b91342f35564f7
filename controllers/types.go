package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/utils"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// pagination reads ?page= and ?pageSize=, clamped to sane bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func newPaginationMeta(page, pageSize int, total int64) *PaginationMeta {
	return &PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
}

// respondError writes the error body for err. Server errors are logged and
// answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// bindError turns a binding failure into a validation error.
func bindError(err error) error {
	return fmt.Errorf("%w: %s", apperr.ErrValidation, err.Error())
}

// paramID reads a numeric path parameter. Anything that is not a positive id
// cannot name an object, so it is reported as not found.
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s %q: %w", name, c.Param(name), apperr.ErrNotFound)
	}
	return uint(id), nil
}

// queryID reads an optional numeric query filter; zero means absent.
func queryID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", apperr.ErrValidation, name)
	}
	return uint(id), nil
}

func publish(c *gin.Context, pub events.Publisher, eventType, targetKind string, targetID uint) {
	pub.Publish(c.Request.Context(), events.Event{
		Type:       eventType,
		ActorID:    utils.Actor(c).UserID,
		TargetKind: targetKind,
		TargetID:   targetID,
		At:         time.Now().UTC(),
	})
}
