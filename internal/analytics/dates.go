package analytics

import "time"

const dateLayout = "2006-01-02"

// Dated is anything carrying a calendar date string (YYYY-MM-DD). The three
// entry models all implement it.
type Dated interface {
	EntryDate() string
}

// GroupByDate buckets items by their date string, preserving the original
// slice order inside each bucket. No filtering or date validation happens
// here; whatever string an item carries is its bucket key.
func GroupByDate[T Dated](items []T) map[string][]T {
	grouped := make(map[string][]T)
	for _, item := range items {
		grouped[item.EntryDate()] = append(grouped[item.EntryDate()], item)
	}
	return grouped
}

// DateRange returns the inclusive start and end dates of the trailing window
// that ends today and spans the given number of days.
func DateRange(days int, now time.Time) (startDate, endDate string) {
	end := now
	start := now.AddDate(0, 0, -days+1)
	return start.Format(dateLayout), end.Format(dateLayout)
}

// DatesBetween lists every calendar date from start to end inclusive. An
// unparseable bound or an inverted range yields an empty list.
func DatesBetween(startDate, endDate string) []string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}
