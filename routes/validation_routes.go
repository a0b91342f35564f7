package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
)

func SetupValidationRoutes(api *gin.RouterGroup, validationController *controllers.ValidationController) {
	validation := api.Group("/validation")
	{
		validation.GET("/email/:email", validationController.ValidateEmail)
	}
}
