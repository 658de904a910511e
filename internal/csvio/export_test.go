package csvio

import (
	"strings"
	"testing"
	"time"

	"fithood/internal/analytics"
	"fithood/internal/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestExportFoodsCSV(t *testing.T) {
	foods := []models.FoodEntry{
		{Date: "2024-01-05", Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 54, Fat: 5, Fiber: floatPtr(8), Count: 1, MealType: "breakfast"},
		{Date: "2024-01-05", Name: "Milk, Buffalo", Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Count: 2},
	}

	out := ExportFoodsCSV(foods)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "date,name,calories,protein,carbs,fat,fiber,sugar,count,mealType", lines[0])
	assert.Equal(t, "2024-01-05,Oatmeal,300,10,54,5,8,,1,breakfast", lines[1])
	// Quoting applies to names containing the delimiter; blank cells stay
	// blank rather than zero.
	assert.Equal(t, `2024-01-05,"Milk, Buffalo",150,8,12,8,,,2,`, lines[2])
}

func TestExportWorkoutsCSV(t *testing.T) {
	workouts := []models.WorkoutEntry{
		{Date: "2024-01-05", Exercise: "Bench Press", Category: "strength", Sets: floatPtr(3), Reps: floatPtr(10), Weight: floatPtr(62.5)},
	}

	out := ExportWorkoutsCSV(workouts)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "date,exercise,category,sets,reps,weight,duration,caloriesBurned,distance,notes", lines[0])
	assert.Equal(t, "2024-01-05,Bench Press,strength,3,10,62.5,,,,", lines[1])
}

func TestExportWeightsCSV(t *testing.T) {
	weights := []models.WeightEntry{
		{Date: "2024-01-05", Weight: 80.4, BodyFat: floatPtr(18.2)},
		{Date: "2024-01-12", Weight: 80.1},
	}

	out := ExportWeightsCSV(weights)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "date,weight,bodyFat,notes", lines[0])
	assert.Equal(t, "2024-01-05,80.4,18.2,", lines[1])
	assert.Equal(t, "2024-01-12,80.1,,", lines[2])
}

func TestFoodCSVRoundTrip(t *testing.T) {
	original := []models.FoodEntry{
		{Date: "2024-01-05", Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 54, Fat: 5, Count: 1, MealType: "breakfast"},
		{Date: "2024-01-06", Name: "Milk, Buffalo", Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Sugar: floatPtr(12), Count: 2, MealType: "snack"},
	}

	parsed := ParseFoodCSV(ExportFoodsCSV(original))

	assert.Len(t, parsed, len(original))
	for i := range original {
		assert.Equal(t, original[i].Date, parsed[i].Date)
		assert.Equal(t, original[i].Name, parsed[i].Name)
		assert.InDelta(t, original[i].Calories, parsed[i].Calories, 0.001)
		assert.InDelta(t, original[i].Protein, parsed[i].Protein, 0.001)
		assert.InDelta(t, original[i].Carbs, parsed[i].Carbs, 0.001)
		assert.InDelta(t, original[i].Fat, parsed[i].Fat, 0.001)
		assert.InDelta(t, original[i].Count, parsed[i].Count, 0.001)
		assert.Equal(t, original[i].MealType, parsed[i].MealType)
	}
	assert.Nil(t, parsed[0].Sugar)
	assert.InDelta(t, 12, *parsed[1].Sugar, 0.001)
}

func TestWorkoutCSVRoundTrip(t *testing.T) {
	original := []models.WorkoutEntry{
		{Date: "2024-01-05", Exercise: "Bench Press", Category: "strength", Sets: floatPtr(3), Reps: floatPtr(10), Weight: floatPtr(60)},
		{Date: "2024-01-06", Exercise: "Running", Category: "cardio", Duration: floatPtr(30), Distance: floatPtr(5), CaloriesBurned: floatPtr(300)},
	}

	parsed := ParseWorkoutCSV(ExportWorkoutsCSV(original))

	assert.Len(t, parsed, len(original))
	for i := range original {
		assert.Equal(t, original[i].Date, parsed[i].Date)
		assert.Equal(t, original[i].Exercise, parsed[i].Exercise)
		assert.Equal(t, original[i].Category, parsed[i].Category)
	}
	assert.InDelta(t, 3, *parsed[0].Sets, 0.001)
	assert.Nil(t, parsed[0].Duration)
	assert.InDelta(t, 5, *parsed[1].Distance, 0.001)
	assert.Nil(t, parsed[1].Sets)
}

func TestExportDeficitCSV(t *testing.T) {
	profile := models.UserProfile{
		Height:        175,
		Age:           30,
		Gender:        "male",
		ActivityLevel: models.ActivitySedentary,
	}
	weights := []models.WeightEntry{
		{Date: "2024-01-02", Weight: 80},
	}
	burn := 200.0
	summaries := []analytics.DailySummary{
		{Date: "2024-01-01", TotalCalories: 1800},
		{Date: "2024-01-02", TotalCalories: 0},
		{
			Date:          "2024-01-03",
			TotalCalories: 2000,
			WorkoutEntries: []models.WorkoutEntry{
				{Exercise: "Running", CaloriesBurned: &burn},
			},
		},
	}

	out := ExportDeficitCSV(summaries, profile, weights)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "date,weight,caloriesIn,caloriesBurned,bmr,tdee,deficit", lines[0])

	// Day before the first weigh-in: blank weight, zero BMR/TDEE, and the
	// deficit degenerates to raw intake.
	assert.Equal(t, "2024-01-01,,1800,0,0,0,1800", lines[1])

	// No logged calories: deficit cell stays blank.
	cells := strings.Split(lines[2], ",")
	assert.Equal(t, "80", cells[1])
	assert.Equal(t, "0", cells[2])
	assert.Equal(t, "", cells[6])

	// Weight carried forward from the 2nd; burn included in the deficit.
	bmr := analytics.CalculateBMR(80, profile)
	tdee := analytics.CalculateTDEE(bmr, profile.ActivityLevel)
	cells = strings.Split(lines[3], ",")
	assert.Equal(t, "80", cells[1])
	assert.Equal(t, "200", cells[3])
	deficit := 2000 - (tdee + 200)
	assert.Equal(t, formatNumber(deficit), cells[6])
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "fithood-food-2024-06-15.csv", ExportFilename("food", now))
	assert.Equal(t, "fithood-deficit-2024-06-15.csv", ExportFilename("deficit", now))
}
