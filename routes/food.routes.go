package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController, searchController *controllers.FoodSearchController) {
	foodRoutes := router.Group("/food")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodController.CreateFoodEntry)
		foodRoutes.POST("/batch", foodController.CreateFoodEntries)
		foodRoutes.GET("/", foodController.GetFoodEntries)
		foodRoutes.GET("/search", searchController.SearchFoods)
		foodRoutes.GET("/date/:date", foodController.GetFoodEntriesByDate)
		foodRoutes.PUT("/:id", foodController.UpdateFoodEntry)
		foodRoutes.DELETE("/:id", foodController.DeleteFoodEntry)
		foodRoutes.DELETE("/date/:date", foodController.DeleteFoodEntriesByDate)
		foodRoutes.DELETE("/", foodController.ClearFoodEntries)
	}
}
