package controllers

import (
	"net/http"

	"fithood/internal/analytics"
	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

// DashboardController assembles the multi-day analytics view: per-day
// summaries, period totals and averages, macro split, energy balance, and
// per-food contributions.
type DashboardController struct {
	foodRepo       repository.FoodRepository
	workoutRepo    repository.WorkoutRepository
	weightRepo     repository.WeightRepository
	profileRepo    repository.UserProfileRepository
	completionRepo repository.DayCompletionRepository
}

func NewDashboardController(
	foodRepo repository.FoodRepository,
	workoutRepo repository.WorkoutRepository,
	weightRepo repository.WeightRepository,
	profileRepo repository.UserProfileRepository,
	completionRepo repository.DayCompletionRepository,
) *DashboardController {
	return &DashboardController{
		foodRepo:       foodRepo,
		workoutRepo:    workoutRepo,
		weightRepo:     weightRepo,
		profileRepo:    profileRepo,
		completionRepo: completionRepo,
	}
}

// GetDashboard godoc
// @Summary Period analytics dashboard
// @Description Aggregate the last N days of food, workout, and weight data into summaries, totals, macro split, energy balance, and food contributions
// @Tags dashboard
// @Produce json
// @Param days query int false "Window size in days (default 7)"
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to build dashboard"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	days := daysQuery(c, 7)
	now := timeNow()
	start, end := analytics.DateRange(days, now)

	foods, err := dc.foodRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		dashboardError(c, err)
		return
	}
	workouts, err := dc.workoutRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		dashboardError(c, err)
		return
	}
	rangeWeights, err := dc.weightRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		dashboardError(c, err)
		return
	}
	markers, err := dc.completionRepo.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		dashboardError(c, err)
		return
	}

	profile, err := dc.profileRepo.FindByUserID(userID)
	if err != nil {
		dashboardError(c, err)
		return
	}
	if profile == nil {
		def := models.DefaultUserProfile(userID)
		profile = &def
	}

	// Projections need the latest measurement even when it predates the
	// window, so the full history is consulted for the current weight.
	allWeights, err := dc.weightRepo.FindAllByUserID(userID)
	if err != nil {
		dashboardError(c, err)
		return
	}
	var currentWeight float64
	if len(allWeights) > 0 {
		currentWeight = allWeights[len(allWeights)-1].Weight
	}

	summaries := analytics.BuildDailySummaries(start, end, foods, workouts, rangeWeights, markers, now)
	balance := analytics.CalculateEnergyBalance(summaries, *profile, currentWeight)
	contributions := analytics.FoodContributions(foods)

	var (
		totalCalories float64
		totalProtein  float64
		totalCarbs    float64
		totalFat      float64
		totalBurned   float64
	)
	for _, s := range summaries {
		// Workouts count toward the burn total even on days with no food
		// logged. Intake totals only cover logged days.
		totalBurned += analytics.TotalCaloriesBurned(s.WorkoutEntries)
		if s.TotalCalories == 0 {
			continue
		}
		totalCalories += s.TotalCalories
		totalProtein += s.TotalProtein
		totalCarbs += s.TotalCarbs
		totalFat += s.TotalFat
	}

	var avgCalories, avgProtein float64
	if balance.DaysLogged > 0 {
		avgCalories = totalCalories / float64(balance.DaysLogged)
		avgProtein = totalProtein / float64(balance.DaysLogged)
	}
	proteinPct, carbsPct, fatPct := analytics.MacroPercentages(totalProtein, totalCarbs, totalFat)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"start_date":      start,
			"end_date":        end,
			"days":            days,
			"summaries":       summaries,
			"total_calories":  totalCalories,
			"total_burned":    totalBurned,
			"avg_calories":    avgCalories,
			"avg_protein":     avgProtein,
			"current_weight":  currentWeight,
			"macro_split":     gin.H{"protein": proteinPct, "carbs": carbsPct, "fat": fatPct},
			"energy_balance":  balance,
			"food_breakdown":  contributions,
		},
	})
}

// GetDailySummary returns a single date's aggregated summary.
func (dc *DashboardController) GetDailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	foods, err := dc.foodRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		dashboardError(c, err)
		return
	}
	workouts, err := dc.workoutRepo.FindByUserIDAndDate(userID, date)
	if err != nil {
		dashboardError(c, err)
		return
	}
	weights, err := dc.weightRepo.FindByUserIDAndDateRange(userID, date, date)
	if err != nil {
		dashboardError(c, err)
		return
	}
	marker, err := dc.completionRepo.Find(userID, date)
	if err != nil {
		dashboardError(c, err)
		return
	}

	var weight *float64
	if len(weights) > 0 {
		weight = &weights[len(weights)-1].Weight
	}

	summary := analytics.CalculateDailySummary(date, foods, workouts, weight)
	var markerValue *bool
	if marker != nil {
		markerValue = &marker.Complete
	}
	summary.IsComplete = analytics.ResolveDayComplete(date, len(foods) > 0, markerValue, timeNow())

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily summary retrieved successfully",
		"data":    summary,
	})
}

func dashboardError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to build dashboard",
		"error":   err.Error(),
	})
}
