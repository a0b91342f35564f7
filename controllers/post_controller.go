package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/policy"
	"github.com/snap-point/insta-api/storage"
	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

type PostController struct {
	Store      *store.Store
	Storage    storage.Storage
	Events     events.Publisher
	Serializer *Serializer
}

type CreatePostRequest struct {
	Text string   `json:"text" binding:"required"`
	Tags []string `json:"tags"`
}

// UpdatePostRequest serves PUT and PATCH. PUT requires text and treats missing
// tags as an empty set; PATCH only touches the fields sent.
type UpdatePostRequest struct {
	Text *string   `json:"text"`
	Tags *[]string `json:"tags"`
}

func NewPostController(st *store.Store, files storage.Storage, pub events.Publisher, ser *Serializer) *PostController {
	return &PostController{Store: st, Storage: files, Events: pub, Serializer: ser}
}

func (pc *PostController) respondPost(c *gin.Context, status int, post *models.Post) {
	resp, err := pc.Serializer.Post(c, post)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (pc *PostController) respondPosts(c *gin.Context, posts []models.Post) {
	data, err := pc.Serializer.Posts(c, posts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: data})
}

// loadPost fetches the post named by :id and checks action against it.
func (pc *PostController) loadPost(c *gin.Context, action policy.Action) (*models.Post, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	post, err := pc.Store.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := policy.Authorize(action, utils.Actor(c), post); err != nil {
		respondError(c, err)
		return nil, false
	}
	return post, true
}

// ListPosts answers GET /posts, optionally filtered by ?tag= and ?author=.
func (pc *PostController) ListPosts(c *gin.Context) {
	authorID, err := queryID(c, "author")
	if err != nil {
		respondError(c, err)
		return
	}
	posts, err := pc.Store.ListPosts(c.Request.Context(), store.PostFilter{
		AuthorID: authorID,
		TagSlug:  c.Query("tag"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	pc.respondPosts(c, posts)
}

// OwnPosts lists the posts written by the caller.
func (pc *PostController) OwnPosts(c *gin.Context) {
	posts, err := pc.Store.ListPosts(c.Request.Context(), store.PostFilter{AuthorID: utils.Actor(c).UserID})
	if err != nil {
		respondError(c, err)
		return
	}
	pc.respondPosts(c, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, ok := pc.loadPost(c, policy.ActionRetrieve)
	if !ok {
		return
	}
	pc.respondPost(c, http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	ctx := c.Request.Context()

	tags, err := pc.Store.TagsBySlugs(ctx, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}

	post := &models.Post{AuthorID: utils.Actor(c).UserID, Text: req.Text, Tags: tags}
	if err := pc.Store.CreatePost(ctx, post); err != nil {
		respondError(c, err)
		return
	}
	created, err := pc.Store.GetPost(ctx, post.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(c, pc.Events, events.PostCreated, string(models.LikeKindPost), created.ID)
	pc.respondPost(c, http.StatusCreated, created)
}

// UpdatePost serves both PUT (update) and PATCH (partial_update).
func (pc *PostController) UpdatePost(c *gin.Context) {
	action := policy.ActionFor(c.Request.Method, true)
	post, ok := pc.loadPost(c, action)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if action == policy.ActionUpdate {
		if req.Text == nil {
			respondError(c, fmt.Errorf("%w: text is required", apperr.ErrValidation))
			return
		}
		if req.Tags == nil {
			req.Tags = &[]string{}
		}
	}
	if req.Text != nil && *req.Text == "" {
		respondError(c, fmt.Errorf("%w: text may not be blank", apperr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var tags []models.Tag
	if req.Tags != nil {
		resolved, err := pc.Store.TagsBySlugs(ctx, *req.Tags)
		if err != nil {
			respondError(c, err)
			return
		}
		tags = resolved
	}

	if err := pc.Store.UpdatePost(ctx, post, req.Text, tags); err != nil {
		respondError(c, err)
		return
	}
	pc.respondPost(c, http.StatusOK, post)
}

// DeletePost removes the post with its comments, likes and images. Stored
// files go after the transaction commits.
func (pc *PostController) DeletePost(c *gin.Context) {
	post, ok := pc.loadPost(c, policy.ActionDestroy)
	if !ok {
		return
	}

	images, err := pc.Store.DeletePost(c.Request.Context(), post)
	if err != nil {
		respondError(c, err)
		return
	}
	pc.removeFiles(images)

	publish(c, pc.Events, events.PostDeleted, string(models.LikeKindPost), post.ID)
	c.Status(http.StatusNoContent)
}
