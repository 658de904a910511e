package analytics

import (
	"testing"
	"time"

	"fithood/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGroupByDate(t *testing.T) {
	foods := []models.FoodEntry{
		{Date: "2024-01-01", Name: "A"},
		{Date: "2024-01-02", Name: "B"},
		{Date: "2024-01-01", Name: "C"},
	}

	grouped := GroupByDate(foods)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["2024-01-01"], 2)
	assert.Len(t, grouped["2024-01-02"], 1)
	// Original order is kept inside a bucket.
	assert.Equal(t, "A", grouped["2024-01-01"][0].Name)
	assert.Equal(t, "C", grouped["2024-01-01"][1].Name)
}

func TestDateRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end := DateRange(7, now)
	assert.Equal(t, "2024-06-09", start)
	assert.Equal(t, "2024-06-15", end)

	start, end = DateRange(1, now)
	assert.Equal(t, "2024-06-15", start)
	assert.Equal(t, "2024-06-15", end)
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween("2024-01-30", "2024-02-02")
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, dates)

	assert.Equal(t, []string{"2024-01-01"}, DatesBetween("2024-01-01", "2024-01-01"))
	assert.Empty(t, DatesBetween("2024-01-02", "2024-01-01"))
	assert.Empty(t, DatesBetween("not-a-date", "2024-01-01"))
}
