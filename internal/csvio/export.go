package csvio

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fithood/internal/analytics"
	"fithood/internal/models"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optionalNumber renders absent values as blank cells, never as zero.
func optionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}

func writeCSV(headers []string, rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write(headers)
	w.WriteAll(rows)
	w.Flush()
	return sb.String()
}

// ExportFoodsCSV serializes food entries with the fixed food column order.
func ExportFoodsCSV(foods []models.FoodEntry) string {
	headers := []string{"date", "name", "calories", "protein", "carbs", "fat", "fiber", "sugar", "count", "mealType"}
	rows := make([][]string, 0, len(foods))
	for _, f := range foods {
		rows = append(rows, []string{
			f.Date,
			f.Name,
			formatNumber(f.Calories),
			formatNumber(f.Protein),
			formatNumber(f.Carbs),
			formatNumber(f.Fat),
			optionalNumber(f.Fiber),
			optionalNumber(f.Sugar),
			formatNumber(f.Count),
			f.MealType,
		})
	}
	return writeCSV(headers, rows)
}

// ExportWorkoutsCSV serializes workout entries with the fixed workout column
// order.
func ExportWorkoutsCSV(workouts []models.WorkoutEntry) string {
	headers := []string{"date", "exercise", "category", "sets", "reps", "weight", "duration", "caloriesBurned", "distance", "notes"}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, []string{
			w.Date,
			w.Exercise,
			w.Category,
			optionalNumber(w.Sets),
			optionalNumber(w.Reps),
			optionalNumber(w.Weight),
			optionalNumber(w.Duration),
			optionalNumber(w.CaloriesBurned),
			optionalNumber(w.Distance),
			w.Notes,
		})
	}
	return writeCSV(headers, rows)
}

// ExportWeightsCSV serializes weight entries.
func ExportWeightsCSV(weights []models.WeightEntry) string {
	headers := []string{"date", "weight", "bodyFat", "notes"}
	rows := make([][]string, 0, len(weights))
	for _, w := range weights {
		rows = append(rows, []string{
			w.Date,
			formatNumber(w.Weight),
			optionalNumber(w.BodyFat),
			w.Notes,
		})
	}
	return writeCSV(headers, rows)
}

// ExportDeficitCSV serializes per-day energy deficit rows for a period. Each
// row's weight is the most recent weight entry on or before that date
// (carried forward); with no prior weight the weight cell stays blank and
// BMR/TDEE are 0. The deficit cell is only filled for days with logged
// calories.
func ExportDeficitCSV(summaries []analytics.DailySummary, profile models.UserProfile, weights []models.WeightEntry) string {
	sorted := make([]models.WeightEntry, len(weights))
	copy(sorted, weights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	weightOn := func(date string) (float64, bool) {
		found := false
		var w float64
		for _, entry := range sorted {
			if entry.Date > date {
				break
			}
			w = entry.Weight
			found = true
		}
		return w, found
	}

	headers := []string{"date", "weight", "caloriesIn", "caloriesBurned", "bmr", "tdee", "deficit"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		weightCell := ""
		var bmr, tdee float64
		if w, ok := weightOn(s.Date); ok {
			weightCell = formatNumber(w)
			bmr = analytics.CalculateBMR(w, profile)
			tdee = analytics.CalculateTDEE(bmr, profile.ActivityLevel)
		}

		burned := analytics.TotalCaloriesBurned(s.WorkoutEntries)
		deficitCell := ""
		if s.TotalCalories > 0 {
			deficitCell = formatNumber(s.TotalCalories - (tdee + burned))
		}

		rows = append(rows, []string{
			s.Date,
			weightCell,
			formatNumber(s.TotalCalories),
			formatNumber(burned),
			formatNumber(bmr),
			formatNumber(tdee),
			deficitCell,
		})
	}
	return writeCSV(headers, rows)
}

// ExportFilename names a download after the entity and the export instant,
// not the data's date range.
func ExportFilename(entity string, now time.Time) string {
	return fmt.Sprintf("fithood-%s-%s.csv", entity, now.Format("2006-01-02"))
}
