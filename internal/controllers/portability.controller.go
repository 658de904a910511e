package controllers

import (
	"fmt"
	"io"
	"net/http"

	"fithood/internal/analytics"
	"fithood/internal/csvio"
	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

// PortabilityController handles CSV import and export of the user's logs.
type PortabilityController struct {
	foodRepo       repository.FoodRepository
	workoutRepo    repository.WorkoutRepository
	weightRepo     repository.WeightRepository
	profileRepo    repository.UserProfileRepository
	completionRepo repository.DayCompletionRepository
}

func NewPortabilityController(
	foodRepo repository.FoodRepository,
	workoutRepo repository.WorkoutRepository,
	weightRepo repository.WeightRepository,
	profileRepo repository.UserProfileRepository,
	completionRepo repository.DayCompletionRepository,
) *PortabilityController {
	return &PortabilityController{
		foodRepo:       foodRepo,
		workoutRepo:    workoutRepo,
		weightRepo:     weightRepo,
		profileRepo:    profileRepo,
		completionRepo: completionRepo,
	}
}

// readCSVBody reads the CSV payload from either a multipart "file" upload or
// the raw request body.
func readCSVBody(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportFoodCSV godoc
// @Summary Import food entries from CSV
// @Description Parse a CSV with flexible column naming and insert the recognized rows
// @Tags portability
// @Accept text/csv
// @Produce json
// @Success 201 {object} map[string]interface{} "Food entries imported successfully"
// @Failure 400 {object} map[string]interface{} "No rows could be parsed"
// @Router /import/food [post]
func (pc *PortabilityController) ImportFoodCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	content, err := readCSVBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to read CSV payload",
			"error":   err.Error(),
		})
		return
	}

	entries := csvio.ParseFoodCSV(content)
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No rows could be parsed",
			"error":   "The CSV contained no recognizable food rows",
		})
		return
	}

	for i := range entries {
		entries[i].UserID = userID
	}

	if err := pc.foodRepo.CreateBatch(entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entries imported successfully",
		"data": gin.H{
			"imported": len(entries),
		},
	})
}

// ImportWorkoutCSV parses and inserts workout rows from a CSV payload.
func (pc *PortabilityController) ImportWorkoutCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	content, err := readCSVBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to read CSV payload",
			"error":   err.Error(),
		})
		return
	}

	entries := csvio.ParseWorkoutCSV(content)
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No rows could be parsed",
			"error":   "The CSV contained no recognizable workout rows",
		})
		return
	}

	for i := range entries {
		entries[i].UserID = userID
	}

	if err := pc.workoutRepo.CreateBatch(entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import workout entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout entries imported successfully",
		"data": gin.H{
			"imported": len(entries),
		},
	})
}

func sendCSV(c *gin.Context, entity, content string) {
	filename := csvio.ExportFilename(entity, timeNow())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

// ExportFoodCSV godoc
// @Summary Export food entries as CSV
// @Tags portability
// @Produce text/csv
// @Success 200 {string} string "CSV attachment"
// @Router /export/food [get]
func (pc *PortabilityController) ExportFoodCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := pc.foodRepo.FindAllByUserID(userID)
	if err != nil {
		exportError(c, err)
		return
	}

	sendCSV(c, "food", csvio.ExportFoodsCSV(entries))
}

// ExportWorkoutCSV streams the user's workout history as a CSV attachment.
func (pc *PortabilityController) ExportWorkoutCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := pc.workoutRepo.FindAllByUserID(userID)
	if err != nil {
		exportError(c, err)
		return
	}

	sendCSV(c, "workouts", csvio.ExportWorkoutsCSV(entries))
}

// ExportWeightCSV streams the user's weight history as a CSV attachment.
func (pc *PortabilityController) ExportWeightCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := pc.weightRepo.FindAllByUserID(userID)
	if err != nil {
		exportError(c, err)
		return
	}

	sendCSV(c, "weight", csvio.ExportWeightsCSV(entries))
}

// ExportDeficitCSV godoc
// @Summary Export the per-day deficit report as CSV
// @Description One row per calendar day in the window with intake, burn, BMR, TDEE, and deficit
// @Tags portability
// @Produce text/csv
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {string} string "CSV attachment"
// @Router /export/deficit [get]
func (pc *PortabilityController) ExportDeficitCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	days := daysQuery(c, 30)
	now := timeNow()
	start, end := analytics.DateRange(days, now)

	foods, err := pc.foodRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		exportError(c, err)
		return
	}
	workouts, err := pc.workoutRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		exportError(c, err)
		return
	}
	// The deficit report carries weight forward across days, so the full
	// history is needed rather than just the window.
	weights, err := pc.weightRepo.FindAllByUserID(userID)
	if err != nil {
		exportError(c, err)
		return
	}
	markers, err := pc.completionRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		exportError(c, err)
		return
	}

	profile, err := pc.profileRepo.FindByUserID(userID)
	if err != nil {
		exportError(c, err)
		return
	}
	if profile == nil {
		def := models.DefaultUserProfile(userID)
		profile = &def
	}

	var rangeWeights []models.WeightEntry
	for _, w := range weights {
		if w.Date >= start && w.Date <= end {
			rangeWeights = append(rangeWeights, w)
		}
	}

	summaries := analytics.BuildDailySummaries(start, end, foods, workouts, rangeWeights, markers, now)

	sendCSV(c, "deficit", csvio.ExportDeficitCSV(summaries, *profile, weights))
}

func exportError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to export data",
		"error":   err.Error(),
	})
}
