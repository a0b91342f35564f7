package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
)

func SetupInteractionRoutes(api *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := api.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.LikePost)
		posts.DELETE("/:id/like", interactionController.UnlikePost)
	}

	comments := api.Group("/comments")
	{
		comments.POST("/:id/like", interactionController.LikeComment)
		comments.DELETE("/:id/like", interactionController.UnlikeComment)
	}

	users := api.Group("/users")
	{
		users.POST("/:id/follow", interactionController.FollowUser)
		users.DELETE("/:id/follow", interactionController.UnfollowUser)
		users.GET("/:id/followers", interactionController.GetFollowers)
		users.GET("/:id/following", interactionController.GetFollowing)
	}
}
