package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/controllers"
	"github.com/snap-point/insta-api/middleware"
	"github.com/snap-point/insta-api/policy"
)

func SetupAccountRoutes(api *gin.RouterGroup, authController *controllers.AuthController) {
	account := api.Group("/account")
	{
		account.POST("/register", authController.Register)
		account.POST("/login", authController.Login)
		account.POST("/refresh", authController.RefreshToken)
		account.POST("/google", authController.GoogleLogin)
		account.POST("/logout", middleware.Require(policy.ActionOwn), authController.Logout)
	}
}

func SetupUserRoutes(api *gin.RouterGroup, userController *controllers.UserController, authController *controllers.AuthController) {
	profile := api.Group("/profile", middleware.Require(policy.ActionOwn))
	{
		profile.GET("", authController.GetProfile)
		profile.PATCH("", authController.UpdateProfile)
	}
	api.GET("/activity", middleware.Require(policy.ActionOwn), userController.GetActivity)

	users := api.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUserProfile)
	}
}
