package analytics

import (
	"testing"

	"fithood/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExerciseName(t *testing.T) {
	assert.Equal(t, "Walking", NormalizeExerciseName("Walking (8km)"))
	assert.Equal(t, "Walking", NormalizeExerciseName("Walking (30 mins)"))
	assert.Equal(t, "Bench Press", NormalizeExerciseName("Bench Press"))
	assert.Equal(t, "Incline Press", NormalizeExerciseName("Incline (dumbbell) Press"))
}

func TestExerciseStats(t *testing.T) {
	workouts := []models.WorkoutEntry{
		{Exercise: "Bench Press", Category: models.CategoryStrength, Sets: floatPtr(3), Weight: floatPtr(60)},
		{Exercise: "Bench Press", Category: models.CategoryStrength, Sets: floatPtr(5), Weight: floatPtr(70)},
		{Exercise: "Bench Press", Category: models.CategoryStrength, Weight: floatPtr(65)},
		{Exercise: "Walking (8km)", Category: models.CategoryCardio, Distance: floatPtr(8), Duration: floatPtr(80), CaloriesBurned: floatPtr(350)},
		{Exercise: "Walking (30 mins)", Category: models.CategoryCardio, Duration: floatPtr(30), CaloriesBurned: floatPtr(120)},
	}

	stats := ExerciseStats(workouts)

	assert.Len(t, stats, 2)

	bench := stats[0]
	assert.Equal(t, "Bench Press", bench.Exercise)
	assert.Equal(t, models.CategoryStrength, bench.Category)
	assert.Equal(t, 3, bench.Count)
	// The entry without sets is excluded from the average.
	assert.InDelta(t, 4, bench.AvgSets, 0.001)
	assert.InDelta(t, 70, bench.MaxWeight, 0.001)

	walking := stats[1]
	assert.Equal(t, "Walking", walking.Exercise)
	assert.Equal(t, 2, walking.Count)
	assert.InDelta(t, 8, walking.TotalDistance, 0.001)
	// Distance average skips the session without a distance.
	assert.InDelta(t, 8, walking.AvgDistance, 0.001)
	assert.InDelta(t, 110, walking.TotalDuration, 0.001)
	assert.InDelta(t, 470, walking.TotalCaloriesBurned, 0.001)
}

func TestExerciseStatsEmpty(t *testing.T) {
	assert.Empty(t, ExerciseStats(nil))
}
