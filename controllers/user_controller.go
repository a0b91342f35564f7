package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(st *store.Store) *UserController {
	return &UserController{Store: st}
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Store.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: newUserResponses(users)})
}

// GetUserProfile returns a user with follower counts and whether the caller
// follows them.
func (uc *UserController) GetUserProfile(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	user, err := uc.Store.GetUser(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	followers, following, err := uc.Store.FollowCounts(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	var isFollowing bool
	if actor := utils.Actor(c); actor.Authenticated() && actor.UserID != user.ID {
		isFollowing, err = uc.Store.FollowExists(ctx, user.ID, actor.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, UserDetailResponse{
		UserResponse: newUserResponse(user),
		Followers:    followers,
		Following:    following,
		IsFollowing:  isFollowing,
	})
}

// GetActivity pages through the caller's own activity.
func (uc *UserController) GetActivity(c *gin.Context) {
	page, pageSize := pagination(c)

	rows, total, err := uc.Store.ListActivity(c.Request.Context(), utils.Actor(c).UserID, (page-1)*pageSize, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       rows,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}
