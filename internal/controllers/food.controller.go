package controllers

import (
	"net/http"

	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	repo repository.FoodRepository
}

func NewFoodController(repo repository.FoodRepository) *FoodController {
	return &FoodController{repo: repo}
}

// CreateFoodEntry godoc
// @Summary Log a food entry
// @Description Create a food entry for the authenticated user
// @Tags food
// @Accept json
// @Produce json
// @Param entry body models.FoodEntry true "Food entry data"
// @Success 201 {object} map[string]interface{} "Food entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food entry"
// @Router /food [post]
func (fc *FoodController) CreateFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.FoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if entry.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Food name is required",
			"error":   "Name must not be empty",
		})
		return
	}

	entry.ID = ""
	entry.UserID = userID

	if err := fc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entry created successfully",
		"data":    entry,
	})
}

// CreateFoodEntries godoc
// @Summary Log multiple food entries
// @Description Create a batch of food entries for the authenticated user
// @Tags food
// @Accept json
// @Produce json
// @Param entries body []models.FoodEntry true "Food entries"
// @Success 201 {object} map[string]interface{} "Food entries created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food entries"
// @Router /food/batch [post]
func (fc *FoodController) CreateFoodEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entries []models.FoodEntry
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

	if err := fc.repo.CreateBatch(entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entries created successfully",
		"data":    entries,
	})
}

// GetFoodEntries godoc
// @Summary List food entries
// @Description Retrieve the authenticated user's food entries, optionally bounded by an inclusive date range
// @Tags food
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Food entries retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve food entries"
// @Router /food [get]
func (fc *FoodController) GetFoodEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var (
		entries []models.FoodEntry
		err     error
	)
	if startDate != "" && endDate != "" {
		entries, err = fc.repo.FindByUserIDAndDateRange(userID, startDate, endDate)
	} else {
		entries, err = fc.repo.FindAllByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries retrieved successfully",
		"data":    entries,
	})
}

// GetFoodEntriesByDate godoc
// @Summary List one day's food entries
// @Tags food
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Food entries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Router /food/date/{date} [get]
func (fc *FoodController) GetFoodEntriesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	entries, err := fc.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries retrieved successfully",
		"data":    entries,
	})
}

// UpdateFoodEntry godoc
// @Summary Update a food entry
// @Description Replace a food entry's fields, preserving its id
// @Tags food
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body models.FoodEntry true "Food entry data"
// @Success 200 {object} map[string]interface{} "Food entry updated successfully"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Router /food/{id} [put]
func (fc *FoodController) UpdateFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.FoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	id := c.Param("id")
	existing, err := fc.repo.FindByID(id)
	if err != nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food entry not found",
			"error":   "No food entry exists with the provided ID",
		})
		return
	}

	entry.ID = existing.ID
	entry.UserID = existing.UserID
	entry.CreatedAt = existing.CreatedAt
	if entry.Count <= 0 {
		entry.Count = 1
	}

	if err := fc.repo.Update(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry updated successfully",
		"data":    entry,
	})
}

// DeleteFoodEntry godoc
// @Summary Delete a food entry
// @Tags food
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{} "Food entry deleted successfully"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Router /food/{id} [delete]
func (fc *FoodController) DeleteFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	existing, err := fc.repo.FindByID(id)
	if err != nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food entry not found",
			"error":   "No food entry exists with the provided ID",
		})
		return
	}

	if err := fc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry deleted successfully",
		"data":    nil,
	})
}

// DeleteFoodEntriesByDate godoc
// @Summary Delete all food entries for a date
// @Tags food
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Food entries deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Router /food/date/{date} [delete]
func (fc *FoodController) DeleteFoodEntriesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	if err := fc.repo.DeleteAllByUserIDAndDate(userID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries deleted successfully",
		"data":    nil,
	})
}

// ClearFoodEntries godoc
// @Summary Delete all of the user's food entries
// @Tags food
// @Produce json
// @Success 200 {object} map[string]interface{} "Food entries cleared successfully"
// @Router /food [delete]
func (fc *FoodController) ClearFoodEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := fc.repo.DeleteAllByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries cleared successfully",
		"data":    nil,
	})
}
