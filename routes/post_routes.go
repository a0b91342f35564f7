package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
	"github.com/snap-point/insta-api/middleware"
	"github.com/snap-point/insta-api/policy"
)

func SetupPostRoutes(api *gin.RouterGroup, postController *controllers.PostController) {
	posts := api.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.POST("", middleware.Require(policy.ActionCreate), postController.CreatePost)
		posts.GET("/own", middleware.Require(policy.ActionOwn), postController.OwnPosts)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.PATCH("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}

func SetupCommentRoutes(api *gin.RouterGroup, commentController *controllers.CommentController) {
	comments := api.Group("/comments")
	{
		comments.GET("", commentController.ListComments)
		comments.POST("", middleware.Require(policy.ActionCreate), commentController.CreateComment)
		comments.GET("/own", middleware.Require(policy.ActionOwn), commentController.OwnComments)
		comments.GET("/:id", commentController.GetComment)
		comments.PUT("/:id", commentController.UpdateComment)
		comments.PATCH("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}
}

func SetupTagRoutes(api *gin.RouterGroup, tagController *controllers.TagController) {
	tags := api.Group("/tags")
	{
		tags.GET("", tagController.ListTags)
		tags.POST("", middleware.Require(policy.ActionCreate), tagController.CreateTag)
		tags.GET("/:slug", tagController.GetTag)
	}
}
