package controllers

import (
	"net/http"

	"fithood/internal/analytics"
	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	repo repository.WorkoutRepository
}

func NewWorkoutController(repo repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{repo: repo}
}

// CreateWorkoutEntry godoc
// @Summary Log a workout entry
// @Description Create a workout entry for the authenticated user
// @Tags workout
// @Accept json
// @Produce json
// @Param entry body models.WorkoutEntry true "Workout entry data"
// @Success 201 {object} map[string]interface{} "Workout entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /workout [post]
func (wc *WorkoutController) CreateWorkoutEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.WorkoutEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if entry.Exercise == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Exercise name is required",
			"error":   "Exercise must not be empty",
		})
		return
	}

	entry.ID = ""
	entry.UserID = userID

	if err := wc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout entry created successfully",
		"data":    entry,
	})
}

// CreateWorkoutEntries handles batch workout logging.
func (wc *WorkoutController) CreateWorkoutEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entries []models.WorkoutEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	for i := range entries {
		entries[i].ID = ""
		entries[i].UserID = userID
	}

	if err := wc.repo.CreateBatch(entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout entries created successfully",
		"data":    entries,
	})
}

// GetWorkoutEntries godoc
// @Summary List workout entries
// @Description Retrieve the authenticated user's workout entries, optionally bounded by an inclusive date range
// @Tags workout
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Workout entries retrieved successfully"
// @Router /workout [get]
func (wc *WorkoutController) GetWorkoutEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var (
		entries []models.WorkoutEntry
		err     error
	)
	if startDate != "" && endDate != "" {
		entries, err = wc.repo.FindByUserIDAndDateRange(userID, startDate, endDate)
	} else {
		entries, err = wc.repo.FindAllByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entries retrieved successfully",
		"data":    entries,
	})
}

// GetWorkoutEntriesByDate returns the entries logged on a single date.
func (wc *WorkoutController) GetWorkoutEntriesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	entries, err := wc.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entries retrieved successfully",
		"data":    entries,
	})
}

// GetExerciseStats godoc
// @Summary Per-exercise aggregate statistics
// @Description Aggregate the user's workout history per normalized exercise name
// @Tags workout
// @Produce json
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} map[string]interface{} "Exercise stats retrieved successfully"
// @Router /workout/stats [get]
func (wc *WorkoutController) GetExerciseStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days := daysQuery(c, 30)
	start, end := analytics.DateRange(days, timeNow())

	entries, err := wc.repo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout entries",
			"error":   err.Error(),
		})
		return
	}

	stats := analytics.ExerciseStats(entries)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise stats retrieved successfully",
		"data": gin.H{
			"start_date": start,
			"end_date":   end,
			"stats":      stats,
		},
	})
}

// UpdateWorkoutEntry replaces a workout entry's fields, preserving its id.
func (wc *WorkoutController) UpdateWorkoutEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.WorkoutEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	id := c.Param("id")
	existing, err := wc.repo.FindByID(id)
	if err != nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout entry not found",
			"error":   "No workout entry exists with the provided ID",
		})
		return
	}

	entry.ID = existing.ID
	entry.UserID = existing.UserID
	entry.CreatedAt = existing.CreatedAt

	if err := wc.repo.Update(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update workout entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entry updated successfully",
		"data":    entry,
	})
}

// DeleteWorkoutEntry removes a single workout entry.
func (wc *WorkoutController) DeleteWorkoutEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	existing, err := wc.repo.FindByID(id)
	if err != nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout entry not found",
			"error":   "No workout entry exists with the provided ID",
		})
		return
	}

	if err := wc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entry deleted successfully",
		"data":    nil,
	})
}

// DeleteWorkoutEntriesByDate removes every workout entry on a date.
func (wc *WorkoutController) DeleteWorkoutEntriesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	if err := wc.repo.DeleteAllByUserIDAndDate(userID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entries deleted successfully",
		"data":    nil,
	})
}

// ClearWorkoutEntries removes the user's entire workout history.
func (wc *WorkoutController) ClearWorkoutEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := wc.repo.DeleteAllByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout entries cleared successfully",
		"data":    nil,
	})
}
