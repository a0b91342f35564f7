package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/policy"
	"github.com/snap-point/insta-api/utils"
)

// Require runs the authorship policy for actions that have no target object,
// such as create and own.
func Require(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Authorize(action, utils.Actor(c), nil); err != nil {
			c.AbortWithStatusJSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
