package analytics

import (
	"math"

	"fithood/internal/models"
)

// CaloriesPerKg is the energy content of roughly one kilogram of fat tissue.
const CaloriesPerKg = 7700

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// Returns 0 when no usable weight is available (new users with no history).
func CalculateBMR(weightKg float64, profile models.UserProfile) float64 {
	if weightKg <= 0 {
		return 0
	}
	bmr := 10*weightKg + 6.25*profile.Height - 5*float64(profile.Age)
	if profile.Gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales BMR by the profile's activity multiplier. An unknown
// activity level falls back to the moderate multiplier.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = ActivityMultipliers[models.ActivityModerate]
	}
	return bmr * mult
}

// PeriodDeficit sums per-day energy deficits over days that have logged
// calories. A day's deficit is intake minus (TDEE plus workout burn), so a
// negative number means a caloric deficit. Days without any food log are
// excluded from both the sum and the returned day count, to avoid claiming a
// full day's TDEE as deficit when nothing was recorded.
func PeriodDeficit(summaries []DailySummary, tdee float64) (totalDeficit float64, daysLogged int) {
	for _, s := range summaries {
		if s.TotalCalories <= 0 {
			continue
		}
		daysLogged++
		if tdee > 0 {
			totalDeficit += s.TotalCalories - (tdee + TotalCaloriesBurned(s.WorkoutEntries))
		}
	}
	if tdee <= 0 {
		return 0, daysLogged
	}
	return totalDeficit, daysLogged
}

// WeeklyChangeKg projects weekly weight change from a period's total deficit.
// Negative deficit (eating under maintenance) projects loss; surplus
// projects gain.
func WeeklyChangeKg(totalDeficit float64, daysLogged int) float64 {
	if daysLogged == 0 {
		return 0
	}
	return totalDeficit / float64(daysLogged) * 7 / CaloriesPerKg
}

// TargetCalories derives the daily calorie target for the profile's stated
// weekly goal rate: TDEE plus the adjustment when the goal weight is above
// the current weight, minus it otherwise.
func TargetCalories(tdee float64, profile models.UserProfile, currentWeight float64) float64 {
	weekly := 0.5
	if profile.WeeklyGoal != nil && *profile.WeeklyGoal > 0 {
		weekly = *profile.WeeklyGoal
	}
	dailyAdjustment := weekly * CaloriesPerKg / 7

	if profile.GoalWeight != nil && *profile.GoalWeight > currentWeight {
		return tdee + dailyAdjustment
	}
	return tdee - dailyAdjustment
}

// WeeksToGoal estimates how long the current rate of change takes to reach
// the goal weight. Zero when there is no movement (the goal is unreachable
// at the current rate) or no distance to cover.
func WeeksToGoal(currentWeight, goalWeight, weeklyChangeKg float64) float64 {
	distance := math.Abs(currentWeight - goalWeight)
	if distance == 0 || weeklyChangeKg == 0 {
		return 0
	}
	return distance / math.Abs(weeklyChangeKg)
}

// BMI computes body mass index from weight in kg and height in cm.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// BMICategory labels a BMI value with the standard WHO band.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// EnergyBalance is the full derived energy report for a period.
type EnergyBalance struct {
	BMR             float64 `json:"bmr"`
	TDEE            float64 `json:"tdee"`
	BMI             float64 `json:"bmi"`
	BMICategory     string  `json:"bmi_category,omitempty"`
	DaysLogged      int     `json:"days_logged"`
	TotalDeficit    float64 `json:"total_deficit"`
	AvgDailyDeficit float64 `json:"avg_daily_deficit"`
	WeeklyChangeKg  float64 `json:"weekly_change_kg"`
	TargetCalories  float64 `json:"target_calories"`
	WeeksToGoal     float64 `json:"weeks_to_goal,omitempty"`
}

// CalculateEnergyBalance assembles the period energy report from daily
// summaries, the user's profile, and the current body weight. Pure: the
// caller supplies everything, nothing is fetched.
func CalculateEnergyBalance(summaries []DailySummary, profile models.UserProfile, currentWeight float64) EnergyBalance {
	bmr := CalculateBMR(currentWeight, profile)
	tdee := CalculateTDEE(bmr, profile.ActivityLevel)
	totalDeficit, daysLogged := PeriodDeficit(summaries, tdee)
	weeklyChange := WeeklyChangeKg(totalDeficit, daysLogged)

	balance := EnergyBalance{
		BMR:            bmr,
		TDEE:           tdee,
		BMI:            BMI(currentWeight, profile.Height),
		DaysLogged:     daysLogged,
		TotalDeficit:   totalDeficit,
		WeeklyChangeKg: weeklyChange,
		TargetCalories: TargetCalories(tdee, profile, currentWeight),
	}
	balance.BMICategory = BMICategory(balance.BMI)
	if daysLogged > 0 {
		balance.AvgDailyDeficit = totalDeficit / float64(daysLogged)
	}
	if profile.GoalWeight != nil {
		balance.WeeksToGoal = WeeksToGoal(currentWeight, *profile.GoalWeight, weeklyChange)
	}
	return balance
}
