package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/", profileController.GetProfile)
		profileRoutes.PUT("/", profileController.UpdateProfile)
	}
}
