package analytics

import (
	"testing"

	"fithood/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoodName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Chicken Breast", "breast chicken"},
		{"drops parenthetical", "Milk (1 glass)", "milk"},
		{"drops bracketed", "Rice [leftover]", "rice"},
		{"drops trailing quantity with unit suffix", "Buffalo Milk 350ml", "buffalo milk"},
		{"drops trailing number and unit word", "Protein Shake 2 scoops", "protein shake"},
		{"drops bare trailing number", "Eggs 3", "eggs"},
		{"commas become spaces", "Milk, Buffalo", "buffalo milk"},
		{"sorts words", "Breast Chicken Grilled", "breast chicken grilled"},
		{"empty input", "", ""},
		{"only quantity", "350ml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFoodName(tt.input))
		})
	}
}

func TestNormalizeFoodNameVariantsCoalesce(t *testing.T) {
	// The motivating case: the same food logged three ways.
	a := NormalizeFoodName("Milk, Buffalo (1 glass)")
	b := NormalizeFoodName("Buffalo Milk (350ml)")
	c := NormalizeFoodName("buffalo milk 350ml")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
	assert.Equal(t, "buffalo milk", a)
}

func TestNormalizeFoodNameIdempotent(t *testing.T) {
	inputs := []string{
		"Milk, Buffalo (1 glass)",
		"Grilled Chicken Breast 200g",
		"Protein Shake 2 scoops",
		"Oatmeal",
	}
	for _, in := range inputs {
		once := NormalizeFoodName(in)
		assert.Equal(t, once, NormalizeFoodName(once), "input %q", in)
	}
}

func TestFoodContributions(t *testing.T) {
	foods := []models.FoodEntry{
		{Name: "Buffalo Milk (1 glass)", Calories: 150, Protein: 8, Count: 1},
		{Name: "Milk, Buffalo", Calories: 150, Protein: 8, Count: 2},
		{Name: "Milk, Buffalo", Calories: 150, Protein: 8, Count: 1},
		{Name: "Banana", Calories: 105, Protein: 1, Count: 1},
	}

	contributions := FoodContributions(foods)

	assert.Len(t, contributions, 2)

	milk := contributions[0]
	// Most calories first.
	assert.Equal(t, "Milk, Buffalo", milk.Name, "most frequent spelling wins")
	assert.InDelta(t, 600, milk.TotalCalories, 0.001)
	assert.InDelta(t, 32, milk.TotalProtein, 0.001)
	assert.InDelta(t, 4, milk.Count, 0.001)
	assert.Equal(t, 150, milk.AvgCalories)
	assert.Equal(t, 8, milk.AvgProtein)
	assert.InDelta(t, 600.0/705*100, milk.PercentOfTotal, 0.001)

	banana := contributions[1]
	assert.Equal(t, "Banana", banana.Name)
	assert.InDelta(t, 105.0/705*100, banana.PercentOfTotal, 0.001)
}

func TestFoodContributionsPercentsSum(t *testing.T) {
	foods := []models.FoodEntry{
		{Name: "A", Calories: 120, Count: 1},
		{Name: "B", Calories: 330, Count: 2},
		{Name: "C", Calories: 75, Count: 1},
	}

	var total float64
	for _, c := range FoodContributions(foods) {
		total += c.PercentOfTotal
	}
	assert.InDelta(t, 100, total, 0.001)
}

func TestFoodContributionsEmpty(t *testing.T) {
	assert.Empty(t, FoodContributions(nil))

	// Zero-calorie foods must not divide by zero.
	contributions := FoodContributions([]models.FoodEntry{
		{Name: "Water", Calories: 0, Count: 1},
	})
	assert.Len(t, contributions, 1)
	assert.Zero(t, contributions[0].PercentOfTotal)
}
