package controllers

import (
	"net/http"

	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

type DayCompletionController struct {
	repo repository.DayCompletionRepository
}

func NewDayCompletionController(repo repository.DayCompletionRepository) *DayCompletionController {
	return &DayCompletionController{repo: repo}
}

type markDayRequest struct {
	Complete *bool `json:"complete" binding:"required"`
}

// MarkDay godoc
// @Summary Manually mark a day complete or incomplete
// @Description Override the derived completeness of a date's food log
// @Tags completion
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param body body markDayRequest true "Completion flag"
// @Success 200 {object} map[string]interface{} "Day marked successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /days/{date}/complete [put]
func (dc *DayCompletionController) MarkDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	var req markDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.repo.Mark(userID, date, *req.Complete); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark day",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Day marked successfully",
		"data": gin.H{
			"date":     date,
			"complete": *req.Complete,
		},
	})
}

// GetDay reports a date's manual completion marker, if any.
func (dc *DayCompletionController) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	marker, err := dc.repo.Find(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve day marker",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Day marker retrieved successfully",
		"data":    marker,
	})
}
