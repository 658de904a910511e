package controllers

import (
	"net/http"

	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	repo repository.WeightRepository
}

func NewWeightController(repo repository.WeightRepository) *WeightController {
	return &WeightController{repo: repo}
}

// CreateWeightEntry godoc
// @Summary Log a weight measurement
// @Tags weight
// @Accept json
// @Produce json
// @Param entry body models.WeightEntry true "Weight entry data"
// @Success 201 {object} map[string]interface{} "Weight entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /weight [post]
func (wc *WeightController) CreateWeightEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.WeightEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if entry.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Weight must be positive",
			"error":   "Weight must be greater than zero",
		})
		return
	}

	entry.ID = ""
	entry.UserID = userID

	if err := wc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create weight entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Weight entry created successfully",
		"data":    entry,
	})
}

// CreateWeightEntries handles batch weight logging.
func (wc *WeightController) CreateWeightEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entries []models.WeightEntry
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
			"message": "Failed to create weight entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Weight entries created successfully",
		"data":    entries,
	})
}

// GetWeightEntries godoc
// @Summary List weight measurements
// @Description Retrieve the authenticated user's weight history in ascending date order
// @Tags weight
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Weight entries retrieved successfully"
// @Router /weight [get]
func (wc *WeightController) GetWeightEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var (
		entries []models.WeightEntry
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
			"message": "Failed to retrieve weight entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight entries retrieved successfully",
		"data":    entries,
	})
}

// UpdateWeightEntry replaces a weight entry's fields, preserving its id.
func (wc *WeightController) UpdateWeightEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entry models.WeightEntry
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
			"message": "Weight entry not found",
			"error":   "No weight entry exists with the provided ID",
		})
		return
	}

	entry.ID = existing.ID
	entry.UserID = existing.UserID
	entry.CreatedAt = existing.CreatedAt

	if err := wc.repo.Update(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update weight entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight entry updated successfully",
		"data":    entry,
	})
}

// DeleteWeightEntry removes a single weight measurement.
func (wc *WeightController) DeleteWeightEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	existing, err := wc.repo.FindByID(id)
	if err != nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Weight entry not found",
			"error":   "No weight entry exists with the provided ID",
		})
		return
	}

	if err := wc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete weight entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight entry deleted successfully",
		"data":    nil,
	})
}

// ClearWeightEntries removes the user's entire weight history.
func (wc *WeightController) ClearWeightEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := wc.repo.DeleteAllByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear weight entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight entries cleared successfully",
		"data":    nil,
	})
}
