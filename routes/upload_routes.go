package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
)

func SetupUploadRoutes(api *gin.RouterGroup, postController *controllers.PostController) {
	api.POST("/posts/:id/images", postController.UploadImage)
}
