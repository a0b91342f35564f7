package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/store"
)

type ValidationController struct {
	Store *store.Store
}

func NewValidationController(st *store.Store) *ValidationController {
	return &ValidationController{Store: st}
}

// ValidateEmail tells a signup form whether the address is already taken.
func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	exists, err := vc.Store.UserExists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
