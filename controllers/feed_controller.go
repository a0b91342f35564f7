package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

// Feed lists the posts of the users the caller follows, newest first.
func (pc *PostController) Feed(c *gin.Context) {
	posts, err := pc.Store.ListPosts(c.Request.Context(), store.PostFilter{FollowerID: utils.Actor(c).UserID})
	if err != nil {
		respondError(c, err)
		return
	}
	pc.respondPosts(c, posts)
}
