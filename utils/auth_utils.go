package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/policy"
)

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type contextKey string

const UserContextKey contextKey = "user"

func SetUser(c *gin.Context, claims *UserClaims) {
	c.Set(string(UserContextKey), claims)
}

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// Actor returns the identity of the request, anonymous when no valid token
// was presented.
func Actor(c *gin.Context) policy.Actor {
	user := GetUser(c)
	if user == nil {
		return policy.Anonymous()
	}
	return policy.Actor{UserID: user.UserID, Email: user.Email}
}
