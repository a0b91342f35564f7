package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
	"github.com/snap-point/insta-api/middleware"
	"github.com/snap-point/insta-api/policy"
)

func SetupFeedRoutes(api *gin.RouterGroup, postController *controllers.PostController) {
	api.GET("/feed", middleware.Require(policy.ActionOwn), postController.Feed)
}
