package routes

import (
	"fithood/internal/controllers"
	"fithood/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workout")
	workoutRoutes.Use(middleware.AuthMiddleware())
	{
		workoutRoutes.POST("/", workoutController.CreateWorkoutEntry)
		workoutRoutes.POST("/batch", workoutController.CreateWorkoutEntries)
		workoutRoutes.GET("/", workoutController.GetWorkoutEntries)
		workoutRoutes.GET("/stats", workoutController.GetExerciseStats)
		workoutRoutes.GET("/date/:date", workoutController.GetWorkoutEntriesByDate)
		workoutRoutes.PUT("/:id", workoutController.UpdateWorkoutEntry)
		workoutRoutes.DELETE("/:id", workoutController.DeleteWorkoutEntry)
		workoutRoutes.DELETE("/date/:date", workoutController.DeleteWorkoutEntriesByDate)
		workoutRoutes.DELETE("/", workoutController.ClearWorkoutEntries)
	}
}
