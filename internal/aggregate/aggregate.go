package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

// Minutes returns the span between start and end in whole minutes,
// rounded to the nearest minute and floored at zero. A nil end measures
// against now, so an in-progress entry's duration grows between calls.
func Minutes(start time.Time, end *time.Time, now time.Time) int {
	e := now
	if end != nil {
		e = *end
	}
	m := int(math.Round(e.Sub(start).Minutes()))
	if m < 0 {
		return 0
	}
	return m
}

// DaySummary holds per-category minute totals for one day, in the fixed
// display order, plus the grand total over those categories.
type DaySummary struct {
	Date         string
	Order        []string
	ByCategory   map[string]int
	TotalMinutes int
}

// SummarizeDay totals the given entries for date, one row per category in
// order. Entries whose category is not in order contribute nothing to the
// totals; the day log view still shows them.
func SummarizeDay(date string, entries []model.LogEntry, order []string, now time.Time) DaySummary {
	sums := make(map[string]int, len(order))
	for _, c := range order {
		sums[c] = 0
	}

	for _, e := range entries {
		if e.Date != date {
			continue
		}
		if _, ok := sums[e.Category]; !ok {
			continue
		}
		sums[e.Category] += Minutes(e.Start, e.End, now)
	}

	total := 0
	for _, c := range order {
		total += sums[c]
	}

	return DaySummary{
		Date:         date,
		Order:        append([]string(nil), order...),
		ByCategory:   sums,
		TotalMinutes: total,
	}
}

// ForDay returns the entries bucketed under date, sorted by start time.
func ForDay(date string, entries []model.LogEntry) []model.LogEntry {
	var day []model.LogEntry
	for _, e := range entries {
		if e.Date == date {
			day = append(day, e)
		}
	}
	sort.Slice(day, func(i, j int) bool {
		return day[i].Start.Before(day[j].Start)
	})
	return day
}

// FormatMinutes formats a minute count as a human-readable string like
// "1h 40m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
