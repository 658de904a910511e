package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPortabilityRoutes(router *gin.Engine, portabilityController *controllers.PortabilityController) {
	importRoutes := router.Group("/import")
	importRoutes.Use(middleware.AuthMiddleware())
	{
		importRoutes.POST("/food", portabilityController.ImportFoodCSV)
		importRoutes.POST("/workout", portabilityController.ImportWorkoutCSV)
	}

	exportRoutes := router.Group("/export")
	exportRoutes.Use(middleware.AuthMiddleware())
	{
		exportRoutes.GET("/food", portabilityController.ExportFoodCSV)
		exportRoutes.GET("/workout", portabilityController.ExportWorkoutCSV)
		exportRoutes.GET("/weight", portabilityController.ExportWeightCSV)
		exportRoutes.GET("/deficit", portabilityController.ExportDeficitCSV)
	}
}
