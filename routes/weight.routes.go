package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWeightRoutes(router *gin.Engine, weightController *controllers.WeightController) {
	weightRoutes := router.Group("/weight")
	weightRoutes.Use(middleware.AuthMiddleware())
	{
		weightRoutes.POST("/", weightController.CreateWeightEntry)
		weightRoutes.POST("/batch", weightController.CreateWeightEntries)
		weightRoutes.GET("/", weightController.GetWeightEntries)
		weightRoutes.PUT("/:id", weightController.UpdateWeightEntry)
		weightRoutes.DELETE("/:id", weightController.DeleteWeightEntry)
		weightRoutes.DELETE("/", weightController.ClearWeightEntries)
	}
}
