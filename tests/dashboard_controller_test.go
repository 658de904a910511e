package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fithood/internal/controllers"
	"fithood/internal/models"
	"fithood/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDashboardController() (*controllers.DashboardController, *mocks.MockFoodRepository, *mocks.MockWorkoutRepository, *mocks.MockWeightRepository, *mocks.MockUserProfileRepository, *mocks.MockDayCompletionRepository) {
	foodRepo := new(mocks.MockFoodRepository)
	workoutRepo := new(mocks.MockWorkoutRepository)
	weightRepo := new(mocks.MockWeightRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	completionRepo := new(mocks.MockDayCompletionRepository)
	controller := controllers.NewDashboardController(foodRepo, workoutRepo, weightRepo, profileRepo, completionRepo)
	return controller, foodRepo, workoutRepo, weightRepo, profileRepo, completionRepo
}

func TestGetDashboard(t *testing.T) {
	controller, foodRepo, workoutRepo, weightRepo, profileRepo, completionRepo := setupDashboardController()

	// The controller windows on the current date, so the entry has to sit
	// inside the trailing seven days.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	foodRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]models.FoodEntry{
			{Date: yesterday, Name: "Oatmeal", Calories: 300, Protein: 10, Count: 1},
		}, nil)
	workoutRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]models.WorkoutEntry{}, nil)
	weightRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]models.WeightEntry{}, nil)
	weightRepo.On("FindAllByUserID", uint(1)).
		Return([]models.WeightEntry{{Date: "2024-01-01", Weight: 80}}, nil)
	completionRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]models.DayCompletion{}, nil)
	profileRepo.On("FindByUserID", uint(1)).
		Return(&models.UserProfile{UserID: 1, Height: 175, Age: 30, Gender: "male", ActivityLevel: models.ActivityModerate}, nil)

	router := setupTestRouter()
	router.GET("/dashboard", addAuthMiddleware(1), controller.GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["days"])
	assert.Len(t, data["summaries"].([]interface{}), 7)
	assert.Equal(t, float64(300), data["total_calories"])
	assert.Equal(t, float64(80), data["current_weight"])
	assert.NotNil(t, data["energy_balance"])
	assert.NotNil(t, data["macro_split"])

	breakdown := data["food_breakdown"].([]interface{})
	assert.Len(t, breakdown, 1)

	foodRepo.AssertExpectations(t)
}

func TestGetDashboardBurnedOnFoodlessDay(t *testing.T) {
	controller, foodRepo, workoutRepo, weightRepo, profileRepo, completionRepo := setupDashboardController()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	twoDaysAgo := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	foodRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.FoodEntry{
			{Date: yesterday, Name: "Oatmeal", Calories: 300, Count: 1},
		}, nil)
	// A ride on a day with no food logged still burns calories.
	workoutRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.WorkoutEntry{
			{Date: twoDaysAgo, Exercise: "Cycling", Category: "cardio", CaloriesBurned: floatPtr(250)},
		}, nil)
	weightRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.WeightEntry{}, nil)
	weightRepo.On("FindAllByUserID", uint(1)).
		Return([]models.WeightEntry{{Date: "2024-01-01", Weight: 80}}, nil)
	completionRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.DayCompletion{}, nil)
	profileRepo.On("FindByUserID", uint(1)).
		Return(&models.UserProfile{UserID: 1, Height: 175, Age: 30, Gender: "male", ActivityLevel: models.ActivityModerate}, nil)

	router := setupTestRouter()
	router.GET("/dashboard", addAuthMiddleware(1), controller.GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	assert.Equal(t, float64(250), data["total_burned"])
	// Intake totals still only cover the day with food logged.
	assert.Equal(t, float64(300), data["total_calories"])
}

func TestGetDashboardDefaultsProfile(t *testing.T) {
	controller, foodRepo, workoutRepo, weightRepo, profileRepo, completionRepo := setupDashboardController()

	foodRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.FoodEntry{}, nil)
	workoutRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.WorkoutEntry{}, nil)
	weightRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.WeightEntry{}, nil)
	weightRepo.On("FindAllByUserID", uint(1)).Return([]models.WeightEntry{}, nil)
	completionRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.DayCompletion{}, nil)
	// No saved profile. The repository reports absence as (nil, nil), see
	// TestUserProfileFindByUserIDAbsent; the controller falls back to defaults.
	profileRepo.On("FindByUserID", uint(1)).Return(nil, nil)

	router := setupTestRouter()
	router.GET("/dashboard", addAuthMiddleware(1), controller.GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	balance := data["energy_balance"].(map[string]interface{})
	// No weight on record: BMR cannot be computed.
	assert.Equal(t, float64(0), balance["bmr"])
	assert.Equal(t, float64(0), data["total_calories"])
}

func TestGetDailySummary(t *testing.T) {
	controller, foodRepo, workoutRepo, weightRepo, _, completionRepo := setupDashboardController()

	foodRepo.On("FindByUserIDAndDate", uint(1), "2024-01-05").
		Return([]models.FoodEntry{
			{Date: "2024-01-05", Name: "Rice", Calories: 215, Count: 2},
		}, nil)
	workoutRepo.On("FindByUserIDAndDate", uint(1), "2024-01-05").
		Return([]models.WorkoutEntry{}, nil)
	weightRepo.On("FindByUserIDAndDateRange", uint(1), "2024-01-05", "2024-01-05").
		Return([]models.WeightEntry{}, nil)
	completionRepo.On("Find", uint(1), "2024-01-05").Return(nil, nil)

	router := setupTestRouter()
	router.GET("/dashboard/day/:date", addAuthMiddleware(1), controller.GetDailySummary)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/day/2024-01-05", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "2024-01-05", data["date"])
	// Two servings of 215 kcal.
	assert.Equal(t, float64(430), data["total_calories"])

	foodRepo.AssertExpectations(t)
}

func TestMarkDay(t *testing.T) {
	completionRepo := new(mocks.MockDayCompletionRepository)
	controller := controllers.NewDayCompletionController(completionRepo)
	completionRepo.On("Mark", uint(1), "2024-01-05", true).Return(nil)

	router := setupTestRouter()
	router.PUT("/days/:date/complete", addAuthMiddleware(1), controller.MarkDay)

	req := httptest.NewRequest(http.MethodPut, "/days/2024-01-05/complete", jsonBody(t, map[string]interface{}{"complete": true}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	completionRepo.AssertExpectations(t)
}

func TestMarkDayMissingFlag(t *testing.T) {
	completionRepo := new(mocks.MockDayCompletionRepository)
	controller := controllers.NewDayCompletionController(completionRepo)

	router := setupTestRouter()
	router.PUT("/days/:date/complete", addAuthMiddleware(1), controller.MarkDay)

	req := httptest.NewRequest(http.MethodPut, "/days/2024-01-05/complete", jsonBody(t, map[string]interface{}{}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	completionRepo.AssertNotCalled(t, "Mark")
}
