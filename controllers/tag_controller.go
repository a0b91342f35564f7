package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/store"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

const maxSlugLength = 50

type TagController struct {
	Store      *store.Store
	Serializer *Serializer
}

type CreateTagRequest struct {
	Title string `json:"title" binding:"required,max=50"`
	Slug  string `json:"slug"`
}

func NewTagController(st *store.Store, ser *Serializer) *TagController {
	return &TagController{Store: st, Serializer: ser}
}

func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.Store.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]TagResponse, 0, len(tags))
	for i := range tags {
		data = append(data, newTagResponse(&tags[i]))
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: data})
}

// GetTag returns the tag with the posts carrying it.
func (tc *TagController) GetTag(c *gin.Context) {
	ctx := c.Request.Context()
	tag, err := tc.Store.GetTag(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	posts, err := tc.Store.ListPosts(ctx, store.PostFilter{TagSlug: tag.Slug})
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := tc.Serializer.Posts(c, posts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":  tag.Slug,
		"title": tag.Title,
		"posts": data,
	})
}

// CreateTag stores a tag; the slug is derived from the title when omitted.
func (tc *TagController) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	title := strings.TrimSpace(req.Title)
	s := strings.TrimSpace(req.Slug)
	if s == "" {
		s = slug.Make(title)
	}
	if len(s) > maxSlugLength || !slugPattern.MatchString(s) {
		respondError(c, fmt.Errorf("%w: slug must be letters, numbers, underscores or hyphens", apperr.ErrValidation))
		return
	}

	tag := &models.Tag{Slug: s, Title: title}
	if err := tc.Store.CreateTag(c.Request.Context(), tag); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			err = fmt.Errorf("%w: tag with this slug or title already exists", apperr.ErrValidation)
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTagResponse(tag))
}
