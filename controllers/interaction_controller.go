package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/social"
	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

// InteractionController serves follows and likes.
type InteractionController struct {
	Store  *store.Store
	Guard  *social.Guard
	Likes  *social.Likes
	Events events.Publisher
}

func NewInteractionController(st *store.Store, guard *social.Guard, likes *social.Likes, pub events.Publisher) *InteractionController {
	return &InteractionController{Store: st, Guard: guard, Likes: likes, Events: pub}
}

func (ic *InteractionController) loadUser(c *gin.Context) (*models.User, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	user, err := ic.Store.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return user, true
}

// users loads the followed user from :id and the caller.
func (ic *InteractionController) users(c *gin.Context) (followed, follower *models.User, ok bool) {
	actor := utils.Actor(c)
	if !actor.Authenticated() {
		respondError(c, apperr.ErrUnauthenticated)
		return nil, nil, false
	}
	if followed, ok = ic.loadUser(c); !ok {
		return nil, nil, false
	}
	follower, err := ic.Store.GetUser(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return followed, follower, true
}

func (ic *InteractionController) FollowUser(c *gin.Context) {
	followed, follower, ok := ic.users(c)
	if !ok {
		return
	}

	follow, err := ic.Guard.CreateFollow(c.Request.Context(), followed, follower)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(c, ic.Events, events.UserFollowed, "user", followed.ID)
	c.JSON(http.StatusCreated, gin.H{
		"followed":   followed.ID,
		"follower":   follower.ID,
		"created_at": follow.CreatedAt.Format(timeLayout),
	})
}

func (ic *InteractionController) UnfollowUser(c *gin.Context) {
	followed, follower, ok := ic.users(c)
	if !ok {
		return
	}

	if err := ic.Guard.Unfollow(c.Request.Context(), followed, follower); err != nil {
		respondError(c, err)
		return
	}

	publish(c, ic.Events, events.UserUnfollowed, "user", followed.ID)
	c.Status(http.StatusNoContent)
}

func (ic *InteractionController) GetFollowers(c *gin.Context) {
	user, ok := ic.loadUser(c)
	if !ok {
		return
	}
	users, err := ic.Guard.Followers(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: newUserResponses(users)})
}

func (ic *InteractionController) GetFollowing(c *gin.Context) {
	user, ok := ic.loadUser(c)
	if !ok {
		return
	}
	users, err := ic.Guard.Following(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: newUserResponses(users)})
}

// likeable builds the like target named by :id without loading the row; the
// like layer checks that it exists.
func likeable(c *gin.Context, kind models.LikeKind) (models.Likeable, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if kind == models.LikeKindComment {
		return &models.Comment{ID: id}, true
	}
	return &models.Post{ID: id}, true
}

func (ic *InteractionController) like(c *gin.Context, kind models.LikeKind) {
	item, ok := likeable(c, kind)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	created, err := ic.Likes.Like(ctx, item, utils.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := ic.Likes.TotalLikes(ctx, item)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		publish(c, ic.Events, events.ContentLiked, string(kind), item.LikeTarget().ID)
	}
	c.JSON(status, gin.H{"is_fan": true, "total_likes": total})
}

func (ic *InteractionController) unlike(c *gin.Context, kind models.LikeKind) {
	item, ok := likeable(c, kind)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	removed, err := ic.Likes.Unlike(ctx, item, utils.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := ic.Likes.TotalLikes(ctx, item)
	if err != nil {
		respondError(c, err)
		return
	}

	if removed {
		publish(c, ic.Events, events.ContentUnliked, string(kind), item.LikeTarget().ID)
	}
	c.JSON(http.StatusOK, gin.H{"is_fan": false, "total_likes": total})
}

func (ic *InteractionController) LikePost(c *gin.Context)      { ic.like(c, models.LikeKindPost) }
func (ic *InteractionController) UnlikePost(c *gin.Context)    { ic.unlike(c, models.LikeKindPost) }
func (ic *InteractionController) LikeComment(c *gin.Context)   { ic.like(c, models.LikeKindComment) }
func (ic *InteractionController) UnlikeComment(c *gin.Context) { ic.unlike(c, models.LikeKindComment) }
