package analytics

import (
	"math"
	"testing"

	"fithood/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		profile  models.UserProfile
		expected float64
	}{
		{
			name:     "male formula",
			weight:   70,
			profile:  models.UserProfile{Height: 175, Age: 30, Gender: "male"},
			expected: 1648.75,
		},
		{
			name:     "female formula",
			weight:   70,
			profile:  models.UserProfile{Height: 175, Age: 30, Gender: "female"},
			expected: 1482.75,
		},
		{
			name:     "unknown gender uses female offset",
			weight:   70,
			profile:  models.UserProfile{Height: 175, Age: 30, Gender: "other"},
			expected: 1482.75,
		},
		{
			name:     "zero weight yields zero",
			weight:   0,
			profile:  models.UserProfile{Height: 175, Age: 30, Gender: "male"},
			expected: 0,
		},
		{
			name:     "negative weight yields zero",
			weight:   -5,
			profile:  models.UserProfile{Height: 175, Age: 30, Gender: "male"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateBMR(tt.weight, tt.profile), 0.001)
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	bmr := 1600.0

	tests := []struct {
		name       string
		level      string
		multiplier float64
	}{
		{"sedentary", models.ActivitySedentary, 1.2},
		{"light", models.ActivityLight, 1.375},
		{"moderate", models.ActivityModerate, 1.55},
		{"active", models.ActivityActive, 1.725},
		{"very active", models.ActivityVeryActive, 1.9},
		{"unknown falls back to moderate", "couch-to-5k", 1.55},
		{"empty falls back to moderate", "", 1.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, bmr*tt.multiplier, CalculateTDEE(bmr, tt.level), 0.001)
		})
	}
}

func TestTDEEOrdering(t *testing.T) {
	// Higher activity must never decrease TDEE.
	bmr := 1500.0
	levels := []string{
		models.ActivitySedentary,
		models.ActivityLight,
		models.ActivityModerate,
		models.ActivityActive,
		models.ActivityVeryActive,
	}
	prev := 0.0
	for _, level := range levels {
		tdee := CalculateTDEE(bmr, level)
		assert.Greater(t, tdee, prev, "level %s", level)
		prev = tdee
	}
}

func TestPeriodDeficit(t *testing.T) {
	summaries := []DailySummary{
		{Date: "2024-01-01", TotalCalories: 0},
		{Date: "2024-01-02", TotalCalories: 1500},
		{Date: "2024-01-03", TotalCalories: 1800},
	}

	totalDeficit, daysLogged := PeriodDeficit(summaries, 2000)

	// Zero-calorie days are excluded from both the sum and the day count.
	assert.Equal(t, 2, daysLogged)
	assert.InDelta(t, -700, totalDeficit, 0.001)
}

func TestPeriodDeficitSurplus(t *testing.T) {
	summaries := []DailySummary{
		{Date: "2024-01-01", TotalCalories: 2600},
	}

	totalDeficit, daysLogged := PeriodDeficit(summaries, 2000)

	assert.Equal(t, 1, daysLogged)
	assert.InDelta(t, 600, totalDeficit, 0.001)
}

func TestPeriodDeficitCountsBurn(t *testing.T) {
	burn := 300.0
	summaries := []DailySummary{
		{
			Date:          "2024-01-01",
			TotalCalories: 2000,
			WorkoutEntries: []models.WorkoutEntry{
				{Exercise: "Running", CaloriesBurned: &burn},
			},
		},
	}

	totalDeficit, daysLogged := PeriodDeficit(summaries, 2000)

	// Expenditure is TDEE plus logged burn, so eating at TDEE while
	// training still produces a deficit.
	assert.Equal(t, 1, daysLogged)
	assert.InDelta(t, -300, totalDeficit, 0.001)
}

func TestPeriodDeficitZeroTDEE(t *testing.T) {
	summaries := []DailySummary{
		{Date: "2024-01-01", TotalCalories: 1500},
	}

	totalDeficit, daysLogged := PeriodDeficit(summaries, 0)

	assert.Equal(t, 1, daysLogged)
	assert.Zero(t, totalDeficit)
}

func TestWeeklyChangeKg(t *testing.T) {
	// A consistent 1100 kcal/day deficit over a week is one kilogram.
	change := WeeklyChangeKg(-7700, 7)
	assert.InDelta(t, -1.0, change, 0.001)

	assert.Zero(t, WeeklyChangeKg(-7700, 0))
}

func TestTargetCalories(t *testing.T) {
	weekly := 0.5
	goalDown := 70.0
	goalUp := 90.0

	tests := []struct {
		name     string
		profile  models.UserProfile
		weight   float64
		expected float64
	}{
		{
			name:     "losing weight eats below maintenance",
			profile:  models.UserProfile{GoalWeight: &goalDown, WeeklyGoal: &weekly},
			weight:   80,
			expected: 2000 - 0.5*7700/7,
		},
		{
			name:     "gaining weight eats above maintenance",
			profile:  models.UserProfile{GoalWeight: &goalUp, WeeklyGoal: &weekly},
			weight:   80,
			expected: 2000 + 0.5*7700/7,
		},
		{
			name:     "no goal eats at maintenance",
			profile:  models.UserProfile{},
			weight:   80,
			expected: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TargetCalories(2000, tt.profile, tt.weight), 0.001)
		})
	}
}

func TestWeeksToGoal(t *testing.T) {
	assert.InDelta(t, 20, WeeksToGoal(80, 70, -0.5), 0.001)
	assert.InDelta(t, 10, WeeksToGoal(70, 75, 0.5), 0.001)

	// No movement or no distance yields zero rather than a nonsense ETA.
	assert.Zero(t, WeeksToGoal(80, 70, 0))
	assert.Zero(t, WeeksToGoal(80, 80, -0.5))
}

func TestBMI(t *testing.T) {
	assert.InDelta(t, 22.86, BMI(70, 175), 0.01)
	assert.Zero(t, BMI(70, 0))
	assert.Zero(t, BMI(0, 175))
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{17.0, "underweight"},
		{22.0, "normal"},
		{27.0, "overweight"},
		{32.0, "obese"},
		{0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestCalculateEnergyBalance(t *testing.T) {
	goal := 70.0
	weekly := 0.5
	profile := models.UserProfile{
		Height:        175,
		Age:           30,
		Gender:        "male",
		ActivityLevel: models.ActivitySedentary,
		GoalWeight:    &goal,
		WeeklyGoal:    &weekly,
	}
	summaries := []DailySummary{
		{Date: "2024-01-01", TotalCalories: 1500},
		{Date: "2024-01-02", TotalCalories: 0},
		{Date: "2024-01-03", TotalCalories: 1700},
	}

	balance := CalculateEnergyBalance(summaries, profile, 80)

	bmr := CalculateBMR(80, profile)
	tdee := bmr * 1.2
	assert.InDelta(t, bmr, balance.BMR, 0.001)
	assert.InDelta(t, tdee, balance.TDEE, 0.001)
	assert.Equal(t, 2, balance.DaysLogged)
	assert.InDelta(t, (1500-tdee)+(1700-tdee), balance.TotalDeficit, 0.001)
	assert.InDelta(t, balance.TotalDeficit/2, balance.AvgDailyDeficit, 0.001)
	assert.InDelta(t, balance.TotalDeficit/2*7/CaloriesPerKg, balance.WeeklyChangeKg, 0.001)
	assert.Equal(t, "overweight", balance.BMICategory)
	if balance.WeeklyChangeKg < 0 {
		assert.InDelta(t, math.Abs((70-80)/balance.WeeklyChangeKg), balance.WeeksToGoal, 0.001)
	}
}
