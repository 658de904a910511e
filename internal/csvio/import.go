package csvio

import (
	"encoding/csv"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fithood/internal/models"
)

const dateLayout = "2006-01-02"

// columnSpec binds a logical field to the ordered list of header spellings
// accepted for it. The first synonym present in the file wins. Kept as data
// so the synonym sets can be tested and extended without touching the parser.
type columnSpec struct {
	field    string
	synonyms []string
}

var foodColumns = []columnSpec{
	{"date", []string{"date", "day", "datetime", "timestamp"}},
	{"name", []string{"name", "food", "foodname", "item", "fooditem", "description"}},
	{"calories", []string{"calories", "cals", "kcal", "energy", "cal"}},
	{"protein", []string{"protein", "proteins", "prot"}},
	{"carbs", []string{"carbs", "carbohydrates", "carb", "carbohydrate"}},
	{"fat", []string{"fat", "fats", "lipids", "lipid"}},
	{"fiber", []string{"fiber", "fibre", "dietaryfiber"}},
	{"sugar", []string{"sugar", "sugars"}},
	{"meal", []string{"meal", "mealtype", "type", "category"}},
	{"count", []string{"count", "servings", "quantity", "qty"}},
}

var workoutColumns = []columnSpec{
	{"date", []string{"date", "day", "datetime", "timestamp"}},
	{"exercise", []string{"exercise", "name", "workout", "movement", "activity"}},
	{"category", []string{"category", "type", "workouttype", "exercisetype"}},
	{"sets", []string{"sets", "set"}},
	{"reps", []string{"reps", "repetitions", "rep"}},
	{"weight", []string{"weight", "load", "kg", "lbs"}},
	{"duration", []string{"duration", "time", "minutes", "mins"}},
	{"distance", []string{"distance", "km", "miles"}},
	{"caloriesburned", []string{"caloriesburned", "burned", "calsburned"}},
	{"notes", []string{"notes", "note", "comments", "comment"}},
}

var nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]`)

// normalizeColumnName makes header matching case- and punctuation-insensitive.
func normalizeColumnName(name string) string {
	return nonAlphanumericRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
}

var nonNumericRe = regexp.MustCompile(`[^\d.-]`)

// parseNumber is a defensive float parse: strips everything that is not a
// digit, dot, or minus before parsing, and returns 0 on failure. "150 kcal"
// parses as 150; garbage parses as 0.
func parseNumber(value string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

var dateSeparatorRe = regexp.MustCompile(`[/\-.]`)

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// normalizeDate converts assorted date spellings to YYYY-MM-DD. A known
// layout is tried first; otherwise the value is split on /, - or . and read
// as YYYY-MM-DD when the first segment has 4 digits, DD-MM-YYYY otherwise.
// The DD/MM reading is a deliberate assumption: US-style MM/DD input will be
// mis-read silently. Anything else falls back to today.
func normalizeDate(value string, now time.Time) string {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateLayout)
		}
	}

	parts := dateSeparatorRe.Split(value, -1)
	if len(parts) == 3 {
		if len(parts[0]) == 4 {
			return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2])
		}
		return parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
	}

	return now.Format(dateLayout)
}

// normalizeMealType maps a free-text meal label onto the fixed meal set by
// case-insensitive substring match. Unmatched labels stay absent.
func normalizeMealType(value string) string {
	meal := strings.ToLower(value)
	switch {
	case strings.Contains(meal, "breakfast"):
		return "breakfast"
	case strings.Contains(meal, "lunch"):
		return "lunch"
	case strings.Contains(meal, "dinner"):
		return "dinner"
	case strings.Contains(meal, "snack"):
		return "snack"
	}
	return ""
}

// normalizeCategory maps a free-text workout category onto the fixed
// category set. Unmatched values default to "other".
func normalizeCategory(value string) string {
	cat := strings.ToLower(value)
	switch {
	case strings.Contains(cat, "strength"), strings.Contains(cat, "weight"), strings.Contains(cat, "resistance"):
		return models.CategoryStrength
	case strings.Contains(cat, "cardio"), strings.Contains(cat, "aerobic"), strings.Contains(cat, "running"):
		return models.CategoryCardio
	case strings.Contains(cat, "flex"), strings.Contains(cat, "stretch"), strings.Contains(cat, "yoga"):
		return models.CategoryFlexibility
	}
	return models.CategoryOther
}

// row is one parsed CSV record keyed by normalized header name.
type row map[string]string

// value returns the cell under the first matching synonym, and whether any
// matching column exists with a non-blank value.
func (r row) value(spec []columnSpec, field string) (string, bool) {
	for _, col := range spec {
		if col.field != field {
			continue
		}
		for _, syn := range col.synonyms {
			if v, ok := r[normalizeColumnName(syn)]; ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v), true
			}
		}
		return "", false
	}
	return "", false
}

// readRows parses CSV text into header-keyed rows. Malformed records are
// logged as warnings and skipped; parsing never fails outright, at worst it
// yields an empty list.
func readRows(csvContent string) []row {
	reader := csv.NewReader(strings.NewReader(csvContent))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err != io.EOF {
			log.Printf("CSV parsing warning: unreadable header: %v", err)
		}
		return nil
	}
	for i := range header {
		header[i] = normalizeColumnName(header[i])
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("CSV parsing warning: skipping malformed row: %v", err)
			continue
		}

		r := make(row, len(header))
		empty := true
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			r[header[i]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// ParseFoodCSV maps CSV text with a header row into food entries. Headers
// are matched against the food synonym table; missing numeric fields parse
// to 0, missing or unparseable dates fall back to today, and each row gets a
// fresh ID and timestamp. No de-duplication happens here.
func ParseFoodCSV(csvContent string) []models.FoodEntry {
	now := time.Now()
	rows := readRows(csvContent)

	entries := make([]models.FoodEntry, 0, len(rows))
	for _, r := range rows {
		dateValue, _ := r.value(foodColumns, "date")
		name, ok := r.value(foodColumns, "name")
		if !ok {
			name = "Unknown Food"
		}

		entry := models.FoodEntry{
			ID:        uuid.NewString(),
			CreatedAt: now,
			Date:      normalizeDate(dateValue, now),
			Name:      name,
			Count:     1,
		}

		if v, ok := r.value(foodColumns, "calories"); ok {
			entry.Calories = parseNumber(v)
		}
		if v, ok := r.value(foodColumns, "protein"); ok {
			entry.Protein = parseNumber(v)
		}
		if v, ok := r.value(foodColumns, "carbs"); ok {
			entry.Carbs = parseNumber(v)
		}
		if v, ok := r.value(foodColumns, "fat"); ok {
			entry.Fat = parseNumber(v)
		}
		if v, ok := r.value(foodColumns, "fiber"); ok {
			fiber := parseNumber(v)
			entry.Fiber = &fiber
		}
		if v, ok := r.value(foodColumns, "sugar"); ok {
			sugar := parseNumber(v)
			entry.Sugar = &sugar
		}
		if v, ok := r.value(foodColumns, "count"); ok {
			if n := parseNumber(v); n > 0 {
				entry.Count = n
			}
		}
		if v, ok := r.value(foodColumns, "meal"); ok {
			entry.MealType = normalizeMealType(v)
		}

		entries = append(entries, entry)
	}
	return entries
}

// ParseWorkoutCSV maps CSV text with a header row into workout entries.
// Optional metrics stay absent (nil) when their column is missing or blank,
// so zero is never invented for averaging.
func ParseWorkoutCSV(csvContent string) []models.WorkoutEntry {
	now := time.Now()
	rows := readRows(csvContent)

	optional := func(r row, field string) *float64 {
		if v, ok := r.value(workoutColumns, field); ok {
			n := parseNumber(v)
			return &n
		}
		return nil
	}

	entries := make([]models.WorkoutEntry, 0, len(rows))
	for _, r := range rows {
		dateValue, _ := r.value(workoutColumns, "date")
		exercise, ok := r.value(workoutColumns, "exercise")
		if !ok {
			exercise = "Unknown Exercise"
		}
		categoryValue, _ := r.value(workoutColumns, "category")
		notes, _ := r.value(workoutColumns, "notes")

		entries = append(entries, models.WorkoutEntry{
			ID:             uuid.NewString(),
			CreatedAt:      now,
			Date:           normalizeDate(dateValue, now),
			Exercise:       exercise,
			Category:       normalizeCategory(categoryValue),
			Sets:           optional(r, "sets"),
			Reps:           optional(r, "reps"),
			Weight:         optional(r, "weight"),
			Duration:       optional(r, "duration"),
			Distance:       optional(r, "distance"),
			CaloriesBurned: optional(r, "caloriesburned"),
			Notes:          notes,
		})
	}
	return entries
}
