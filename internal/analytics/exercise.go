package analytics

import (
	"regexp"
	"sort"
	"strings"

	"fithood/internal/models"
)

// ExerciseStat aggregates one distinct exercise across a period. Averages
// only consider entries where the metric was provided and nonzero; sums take
// every provided value.
type ExerciseStat struct {
	Exercise            string  `json:"exercise"`
	Category            string  `json:"category"`
	Count               int     `json:"count"`
	AvgSets             float64 `json:"avg_sets"`
	MaxWeight           float64 `json:"max_weight"`
	TotalDistance       float64 `json:"total_distance"`
	AvgDistance         float64 `json:"avg_distance"`
	TotalDuration       float64 `json:"total_duration"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
}

var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// NormalizeExerciseName strips parenthesised detail so "Walking (8km)" and
// "Walking (30 mins)" aggregate together.
func NormalizeExerciseName(name string) string {
	return strings.TrimSpace(parentheticalRe.ReplaceAllString(name, " "))
}

// ExerciseStats groups workouts by normalized exercise name and computes
// per-exercise aggregates, ordered by occurrence count descending.
func ExerciseStats(workouts []models.WorkoutEntry) []ExerciseStat {
	type accum struct {
		stat          ExerciseStat
		totalSets     float64
		setsCount     int
		distanceCount int
	}
	stats := make(map[string]*accum)
	var order []string

	for _, w := range workouts {
		name := NormalizeExerciseName(w.Exercise)
		a, ok := stats[name]
		if !ok {
			a = &accum{stat: ExerciseStat{Exercise: name, Category: w.Category}}
			stats[name] = a
			order = append(order, name)
		}
		a.stat.Count++
		if w.Sets != nil && *w.Sets > 0 {
			a.totalSets += *w.Sets
			a.setsCount++
		}
		if w.Weight != nil && *w.Weight > a.stat.MaxWeight {
			a.stat.MaxWeight = *w.Weight
		}
		if w.Distance != nil && *w.Distance > 0 {
			a.stat.TotalDistance += *w.Distance
			a.distanceCount++
		}
		if w.Duration != nil {
			a.stat.TotalDuration += *w.Duration
		}
		if w.CaloriesBurned != nil {
			a.stat.TotalCaloriesBurned += *w.CaloriesBurned
		}
	}

	result := make([]ExerciseStat, 0, len(stats))
	for _, name := range order {
		a := stats[name]
		if a.setsCount > 0 {
			a.stat.AvgSets = a.totalSets / float64(a.setsCount)
		}
		if a.distanceCount > 0 {
			a.stat.AvgDistance = a.stat.TotalDistance / float64(a.distanceCount)
		}
		result = append(result, a.stat)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
