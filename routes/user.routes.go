package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/auth")
	{
		userRoutesPublic.POST("/register", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.PUT("/me", userController.UpdateCurrentUser)
		userRoutesPrivate.DELETE("/me", userController.DeleteCurrentUser)
	}
}
