package analytics

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"fithood/internal/models"
)

// FoodContribution is the aggregate of one distinct food across a period.
type FoodContribution struct {
	Name           string  `json:"name"`
	TotalCalories  float64 `json:"total_calories"`
	TotalProtein   float64 `json:"total_protein"`
	Count          float64 `json:"count"`
	AvgCalories    int     `json:"avg_calories"`
	AvgProtein     int     `json:"avg_protein"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

var (
	bracketedRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	// A bare number or number-with-unit-suffix token, e.g. "350ml", "2", "1.5l".
	numberTokenRe = regexp.MustCompile(`^\d+(?:\.\d+)?[a-z]*$`)
)

// quantityUnits are unit words that, preceded by a number, form a trailing
// quantity token pair like "2 scoops" or "1 glass".
var quantityUnits = map[string]bool{
	"ml": true, "l": true, "g": true, "kg": true, "oz": true, "lb": true, "lbs": true,
	"cup": true, "cups": true, "tbsp": true, "tsp": true,
	"scoop": true, "scoops": true, "glass": true, "glasses": true,
	"slice": true, "slices": true, "piece": true, "pieces": true,
	"serving": true, "servings": true,
}

// NormalizeFoodName collapses naming variants of the same food onto one
// grouping key: lower-cased, parenthesised/bracketed content dropped,
// trailing quantity+unit tokens dropped, commas removed, whitespace
// collapsed, and finally the remaining words sorted alphabetically so that
// word-order variants ("Milk, Buffalo" vs "Buffalo Milk") coalesce. Sorting
// words trades precision for recall: unrelated foods sharing the same word
// set in a different order will merge too. Idempotent.
func NormalizeFoodName(name string) string {
	s := strings.ToLower(name)
	s = bracketedRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ",", " ")
	words := strings.Fields(s)

	for len(words) > 0 {
		last := words[len(words)-1]
		if numberTokenRe.MatchString(last) {
			words = words[:len(words)-1]
			continue
		}
		if quantityUnits[last] && len(words) >= 2 && numberTokenRe.MatchString(words[len(words)-2]) {
			words = words[:len(words)-2]
			continue
		}
		break
	}

	sort.Strings(words)
	return strings.Join(words, " ")
}

// FoodContributions ranks distinct foods by total caloric contribution,
// descending. Grouping key is the normalized name; the displayed name is the
// most frequent original spelling within the group, first seen winning ties.
// Count is summed servings (not entry occurrences), averages divide by it,
// and PercentOfTotal shares out the period's total calories.
func FoodContributions(foods []models.FoodEntry) []FoodContribution {
	var periodCalories float64
	for _, f := range foods {
		periodCalories += f.Calories * servings(f)
	}

	type group struct {
		entries       []models.FoodEntry
		spellingCount map[string]int
		spellingOrder []string
	}
	groups := make(map[string]*group)
	var keyOrder []string

	for _, f := range foods {
		key := NormalizeFoodName(f.Name)
		g, ok := groups[key]
		if !ok {
			g = &group{spellingCount: make(map[string]int)}
			groups[key] = g
			keyOrder = append(keyOrder, key)
		}
		g.entries = append(g.entries, f)
		if g.spellingCount[f.Name] == 0 {
			g.spellingOrder = append(g.spellingOrder, f.Name)
		}
		g.spellingCount[f.Name]++
	}

	contributions := make([]FoodContribution, 0, len(groups))
	for _, key := range keyOrder {
		g := groups[key]

		var totalCals, totalProt, totalCount float64
		for _, f := range g.entries {
			n := servings(f)
			totalCals += f.Calories * n
			totalProt += f.Protein * n
			totalCount += n
		}

		// Most frequent original spelling, first-seen order breaking ties.
		displayName := g.spellingOrder[0]
		for _, spelling := range g.spellingOrder {
			if g.spellingCount[spelling] > g.spellingCount[displayName] {
				displayName = spelling
			}
		}

		c := FoodContribution{
			Name:          displayName,
			TotalCalories: totalCals,
			TotalProtein:  totalProt,
			Count:         totalCount,
		}
		if totalCount > 0 {
			c.AvgCalories = int(math.Round(totalCals / totalCount))
			c.AvgProtein = int(math.Round(totalProt / totalCount))
		}
		if periodCalories > 0 {
			c.PercentOfTotal = totalCals / periodCalories * 100
		}
		contributions = append(contributions, c)
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].TotalCalories > contributions[j].TotalCalories
	})
	return contributions
}
