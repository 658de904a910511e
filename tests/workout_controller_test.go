package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fithood/internal/controllers"
	"fithood/internal/models"
	"fithood/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(v float64) *float64 { return &v }

func setupWorkoutControllerWithMock() (*controllers.WorkoutController, *mocks.MockWorkoutRepository) {
	mockRepo := new(mocks.MockWorkoutRepository)
	controller := controllers.NewWorkoutController(mockRepo)
	return controller, mockRepo
}

func TestCreateWorkoutEntry(t *testing.T) {
	controller, mockRepo := setupWorkoutControllerWithMock()
	mockRepo.On("Create", mock.AnythingOfType("*models.WorkoutEntry")).Return(nil)

	router := setupTestRouter()
	router.POST("/workout", addAuthMiddleware(1), controller.CreateWorkoutEntry)

	req := httptest.NewRequest(http.MethodPost, "/workout", jsonBody(t, map[string]interface{}{
		"date":     "2024-01-05",
		"exercise": "Bench Press",
		"category": "strength",
		"sets":     3,
		"reps":     10,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorkoutEntryRequiresExercise(t *testing.T) {
	controller, mockRepo := setupWorkoutControllerWithMock()

	router := setupTestRouter()
	router.POST("/workout", addAuthMiddleware(1), controller.CreateWorkoutEntry)

	req := httptest.NewRequest(http.MethodPost, "/workout", jsonBody(t, map[string]interface{}{
		"date": "2024-01-05",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetExerciseStats(t *testing.T) {
	controller, mockRepo := setupWorkoutControllerWithMock()
	mockRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]models.WorkoutEntry{
			{Date: "2024-01-05", Exercise: "Bench Press", Category: "strength", Sets: floatPtr(3), Weight: floatPtr(60)},
			{Date: "2024-01-07", Exercise: "Bench Press", Category: "strength", Sets: floatPtr(5), Weight: floatPtr(70)},
			{Date: "2024-01-06", Exercise: "Running", Category: "cardio", Distance: floatPtr(5), CaloriesBurned: floatPtr(300)},
		}, nil)

	router := setupTestRouter()
	router.GET("/workout/stats", addAuthMiddleware(1), controller.GetExerciseStats)

	req := httptest.NewRequest(http.MethodGet, "/workout/stats?days=30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	stats := data["stats"].([]interface{})
	assert.Len(t, stats, 2)

	// Most frequent exercise first.
	first := stats[0].(map[string]interface{})
	assert.Equal(t, "Bench Press", first["exercise"])
	assert.Equal(t, float64(2), first["count"])
	assert.Equal(t, float64(70), first["max_weight"])

	mockRepo.AssertExpectations(t)
}
