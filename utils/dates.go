package utils

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/vnkhanh/vacation-server/models"
)

const DateLayout = "2006-01-02"

// ParseDate parses a civil date (YYYY-MM-DD) into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// DurationDays is the inclusive length of a trip in days:
// a trip from 2024-06-01 to 2024-06-03 lasts 3 days.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// DayWithin reports whether day falls inside [start, end], both ends inclusive.
func DayWithin(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

// MonthGrid returns every day shown on a Monday-first calendar page for the
// month containing ref: from the Monday on or before the 1st through the
// Sunday on or after the last day.
func MonthGrid(ref time.Time) []time.Time {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := monthStart
	for gridStart.Weekday() != time.Monday {
		gridStart = gridStart.AddDate(0, 0, -1)
	}
	gridEnd := monthEnd
	for gridEnd.Weekday() != time.Sunday {
		gridEnd = gridEnd.AddDate(0, 0, 1)
	}

	var days []time.Time
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

type ExpenseGroup struct {
	Date     string           `json:"date"`
	Expenses []models.Expense `json:"expenses"`
	Total    float64          `json:"total"`
}

// GroupExpensesByDate buckets expenses by their literal date string and
// returns the groups newest-first. Every expense lands in exactly one group.
func GroupExpensesByDate(expenses []models.Expense) []ExpenseGroup {
	byDate := map[string][]models.Expense{}
	for _, e := range expenses {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	// YYYY-MM-DD sorts the same lexically and chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]ExpenseGroup, 0, len(keys))
	for _, k := range keys {
		g := ExpenseGroup{Date: k, Expenses: byDate[k]}
		for _, e := range g.Expenses {
			g.Total += e.Amount
		}
		groups = append(groups, g)
	}
	return groups
}

// SumByCategory totals expense amounts per category.
func SumByCategory(expenses []models.Expense) map[string]float64 {
	out := map[string]float64{}
	for _, e := range expenses {
		out[e.Category] += e.Amount
	}
	return out
}

// ChecklistProgress is the completion percentage rounded to the nearest
// integer; an empty checklist is 0%.
func ChecklistProgress(items []models.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(float64(checked) / float64(len(items)) * 100))
}
