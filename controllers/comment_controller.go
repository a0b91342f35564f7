package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/policy"
	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

type CommentController struct {
	Store      *store.Store
	Events     events.Publisher
	Serializer *Serializer
}

type CreateCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	PostID uint   `json:"post" binding:"required"`
}

// UpdateCommentRequest has no post field: a comment never moves to another
// post.
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func NewCommentController(st *store.Store, pub events.Publisher, ser *Serializer) *CommentController {
	return &CommentController{Store: st, Events: pub, Serializer: ser}
}

func (cc *CommentController) respondComment(c *gin.Context, status int, comment *models.Comment) {
	resp, err := cc.Serializer.Comment(c, comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (cc *CommentController) respondComments(c *gin.Context, comments []models.Comment) {
	data, err := cc.Serializer.Comments(c, comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: data})
}

func (cc *CommentController) loadComment(c *gin.Context, action policy.Action) (*models.Comment, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	comment, err := cc.Store.GetComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := policy.Authorize(action, utils.Actor(c), comment); err != nil {
		respondError(c, err)
		return nil, false
	}
	return comment, true
}

// ListComments answers GET /comments, optionally filtered by ?post=.
func (cc *CommentController) ListComments(c *gin.Context) {
	postID, err := queryID(c, "post")
	if err != nil {
		respondError(c, err)
		return
	}
	comments, err := cc.Store.ListComments(c.Request.Context(), store.CommentFilter{PostID: postID})
	if err != nil {
		respondError(c, err)
		return
	}
	cc.respondComments(c, comments)
}

func (cc *CommentController) OwnComments(c *gin.Context) {
	comments, err := cc.Store.ListComments(c.Request.Context(), store.CommentFilter{AuthorID: utils.Actor(c).UserID})
	if err != nil {
		respondError(c, err)
		return
	}
	cc.respondComments(c, comments)
}

func (cc *CommentController) GetComment(c *gin.Context) {
	comment, ok := cc.loadComment(c, policy.ActionRetrieve)
	if !ok {
		return
	}
	cc.respondComment(c, http.StatusOK, comment)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	ctx := c.Request.Context()

	exists, err := cc.Store.PostExists(ctx, req.PostID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		respondError(c, fmt.Errorf("%w: post %d does not exist", apperr.ErrValidation, req.PostID))
		return
	}

	comment := &models.Comment{Text: req.Text, PostID: req.PostID, AuthorID: utils.Actor(c).UserID}
	if err := cc.Store.CreateComment(ctx, comment); err != nil {
		respondError(c, err)
		return
	}

	publish(c, cc.Events, events.CommentCreated, string(models.LikeKindComment), comment.ID)
	cc.respondComment(c, http.StatusCreated, comment)
}

// UpdateComment serves both PUT and PATCH; text is the only mutable field.
func (cc *CommentController) UpdateComment(c *gin.Context) {
	action := policy.ActionFor(c.Request.Method, true)
	comment, ok := cc.loadComment(c, action)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if req.Text == nil {
		if action == policy.ActionUpdate {
			respondError(c, fmt.Errorf("%w: text is required", apperr.ErrValidation))
			return
		}
		cc.respondComment(c, http.StatusOK, comment)
		return
	}
	if *req.Text == "" {
		respondError(c, fmt.Errorf("%w: text may not be blank", apperr.ErrValidation))
		return
	}

	if err := cc.Store.UpdateComment(c.Request.Context(), comment, *req.Text); err != nil {
		respondError(c, err)
		return
	}
	cc.respondComment(c, http.StatusOK, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	comment, ok := cc.loadComment(c, policy.ActionDestroy)
	if !ok {
		return
	}
	if err := cc.Store.DeleteComment(c.Request.Context(), comment); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
