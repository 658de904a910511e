package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController, completionController *controllers.DayCompletionController) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware())
	{
		dashboardRoutes.GET("/", dashboardController.GetDashboard)
		dashboardRoutes.GET("/day/:date", dashboardController.GetDailySummary)
	}

	dayRoutes := router.Group("/days")
	dayRoutes.Use(middleware.AuthMiddleware())
	{
		dayRoutes.GET("/:date/complete", completionController.GetDay)
		dayRoutes.PUT("/:date/complete", completionController.MarkDay)
	}
}
