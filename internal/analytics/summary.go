package analytics

import (
	"math"
	"time"

	"fithood/internal/models"
)

// DailySummary aggregates one date's food and workout entries. It is derived
// on demand and never persisted.
type DailySummary struct {
	Date           string                `json:"date"`
	TotalCalories  float64               `json:"total_calories"`
	TotalProtein   float64               `json:"total_protein"`
	TotalCarbs     float64               `json:"total_carbs"`
	TotalFat       float64               `json:"total_fat"`
	TotalFiber     float64               `json:"total_fiber"`
	TotalSugar     float64               `json:"total_sugar"`
	FoodEntries    []models.FoodEntry    `json:"food_entries"`
	WorkoutEntries []models.WorkoutEntry `json:"workout_entries"`
	Weight         *float64              `json:"weight,omitempty"`
	IsComplete     bool                  `json:"is_complete"`
}

// servings treats a missing or non-positive count as a single serving.
func servings(f models.FoodEntry) float64 {
	if f.Count <= 0 {
		return 1
	}
	return f.Count
}

// CalculateDailySummary reduces one day's entries into aggregate totals.
// Every nutrient total is the per-serving value times the entry's serving
// count; optional fiber/sugar contribute 0 when absent.
func CalculateDailySummary(date string, foods []models.FoodEntry, workouts []models.WorkoutEntry, weight *float64) DailySummary {
	summary := DailySummary{
		Date:           date,
		FoodEntries:    foods,
		WorkoutEntries: workouts,
		Weight:         weight,
	}

	for _, f := range foods {
		n := servings(f)
		summary.TotalCalories += f.Calories * n
		summary.TotalProtein += f.Protein * n
		summary.TotalCarbs += f.Carbs * n
		summary.TotalFat += f.Fat * n
		if f.Fiber != nil {
			summary.TotalFiber += *f.Fiber * n
		}
		if f.Sugar != nil {
			summary.TotalSugar += *f.Sugar * n
		}
	}

	return summary
}

// TotalCaloriesBurned sums workout burn across a day. Absent values count as
// zero in sums (unlike averages, which skip them).
func TotalCaloriesBurned(workouts []models.WorkoutEntry) float64 {
	var total float64
	for _, w := range workouts {
		if w.CaloriesBurned != nil {
			total += *w.CaloriesBurned
		}
	}
	return total
}

// ResolveDayComplete decides whether a date's food log is final. A manual
// marker wins in either direction; otherwise only past dates with at least
// one food entry are complete. Today and future dates stay incomplete so
// still-accumulating data never pollutes multi-day averages.
func ResolveDayComplete(date string, hasFood bool, marker *bool, now time.Time) bool {
	if marker != nil {
		return *marker
	}
	return date < now.Format(dateLayout) && hasFood
}

// BuildDailySummaries produces one summary per calendar day in the inclusive
// range, including days with no entries. Weights are matched by date; when a
// date has several, the last one in the slice wins. Completion markers are
// keyed by date and resolved per ResolveDayComplete.
func BuildDailySummaries(
	startDate, endDate string,
	foods []models.FoodEntry,
	workouts []models.WorkoutEntry,
	weights []models.WeightEntry,
	markers []models.DayCompletion,
	now time.Time,
) []DailySummary {
	foodsByDate := GroupByDate(foods)
	workoutsByDate := GroupByDate(workouts)

	weightByDate := make(map[string]float64)
	for _, w := range weights {
		weightByDate[w.Date] = w.Weight
	}
	markerByDate := make(map[string]bool)
	for _, m := range markers {
		markerByDate[m.Date] = m.Complete
	}

	var summaries []DailySummary
	for _, date := range DatesBetween(startDate, endDate) {
		var weight *float64
		if w, ok := weightByDate[date]; ok {
			weight = &w
		}

		summary := CalculateDailySummary(date, foodsByDate[date], workoutsByDate[date], weight)

		var marker *bool
		if m, ok := markerByDate[date]; ok {
			marker = &m
		}
		summary.IsComplete = ResolveDayComplete(date, len(summary.FoodEntries) > 0, marker, now)

		summaries = append(summaries, summary)
	}
	return summaries
}

// MacroPercentages converts gram totals into a calorie-share split using the
// 4/4/9 kcal-per-gram factors. All zeros when nothing was logged.
func MacroPercentages(protein, carbs, fat float64) (proteinPct, carbsPct, fatPct int) {
	proteinCals := protein * 4
	carbsCals := carbs * 4
	fatCals := fat * 9
	total := proteinCals + carbsCals + fatCals

	if total == 0 {
		return 0, 0, 0
	}

	return int(math.Round(proteinCals / total * 100)),
		int(math.Round(carbsCals / total * 100)),
		int(math.Round(fatCals / total * 100))
}
