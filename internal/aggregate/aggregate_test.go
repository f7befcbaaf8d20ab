package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

var order = []string{"SiteVisit", "Estimate", "Travel", "Office", "Break"}

func at(h, m int) time.Time {
	return time.Date(2026, 2, 27, h, m, 0, 0, time.Local)
}

func closed(category string, start, end time.Time) model.LogEntry {
	return model.LogEntry{
		ID:       category + start.Format("1504"),
		Date:     "2026-02-27",
		Category: category,
		Start:    start,
		End:      &end,
	}
}

func TestMinutesFloorAndRounding(t *testing.T) {
	now := at(12, 0)
	base := at(9, 0)

	// Same instant is zero, and an end before start never goes negative.
	assert.Equal(t, 0, aggregate.Minutes(base, &base, now))
	earlier := base.Add(-5 * time.Minute)
	assert.Equal(t, 0, aggregate.Minutes(base, &earlier, now))

	// Rounds to the nearest minute.
	end := base.Add(29*time.Second + 29*time.Minute)
	assert.Equal(t, 29, aggregate.Minutes(base, &end, now))
	end = base.Add(31*time.Second + 29*time.Minute)
	assert.Equal(t, 30, aggregate.Minutes(base, &end, now))
}

func TestMinutesOpenEntryGrowsWithNow(t *testing.T) {
	start := at(9, 0)
	assert.Equal(t, 30, aggregate.Minutes(start, nil, at(9, 30)))
	assert.Equal(t, 90, aggregate.Minutes(start, nil, at(10, 30)))
}

func TestSummarizeDayBasicDay(t *testing.T) {
	// Travel 09:00–09:30, SiteVisit 09:30–12:00, back to back.
	entries := []model.LogEntry{
		closed("Travel", at(9, 0), at(9, 30)),
		closed("SiteVisit", at(9, 30), at(12, 0)),
	}

	sum := aggregate.SummarizeDay("2026-02-27", entries, order, at(13, 0))
	assert.Equal(t, 30, sum.ByCategory["Travel"])
	assert.Equal(t, 150, sum.ByCategory["SiteVisit"])
	assert.Equal(t, 180, sum.TotalMinutes)
	assert.Equal(t, order, sum.Order)
}

func TestSummarizeDaySumsCategory(t *testing.T) {
	entries := []model.LogEntry{
		closed("Office", at(8, 0), at(8, 20)),
		closed("Office", at(9, 0), at(9, 40)),
		closed("Office", at(13, 0), at(13, 15)),
	}
	sum := aggregate.SummarizeDay("2026-02-27", entries, order, at(14, 0))
	assert.Equal(t, 75, sum.ByCategory["Office"])
	assert.Equal(t, 75, sum.TotalMinutes)
}

func TestSummarizeDayExcludesUnlistedCategories(t *testing.T) {
	entries := []model.LogEntry{
		closed("Office", at(9, 0), at(10, 0)),
		closed("Mystery", at(10, 0), at(11, 0)),
	}
	sum := aggregate.SummarizeDay("2026-02-27", entries, order, at(12, 0))
	assert.Equal(t, 60, sum.TotalMinutes)
	assert.NotContains(t, sum.ByCategory, "Mystery")
}

func TestSummarizeDayIgnoresOtherDays(t *testing.T) {
	other := closed("Office", at(9, 0), at(10, 0))
	other.Date = "2026-02-26"
	entries := []model.LogEntry{
		other,
		closed("Office", at(9, 0), at(9, 30)),
	}
	sum := aggregate.SummarizeDay("2026-02-27", entries, order, at(12, 0))
	assert.Equal(t, 30, sum.TotalMinutes)
}

func TestForDaySortsByStart(t *testing.T) {
	entries := []model.LogEntry{
		closed("Office", at(13, 0), at(14, 0)),
		closed("Travel", at(8, 0), at(9, 0)),
		closed("Break", at(12, 0), at(12, 30)),
	}
	day := aggregate.ForDay("2026-02-27", entries)
	assert.Len(t, day, 3)
	assert.Equal(t, "Travel", day[0].Category)
	assert.Equal(t, "Break", day[1].Category)
	assert.Equal(t, "Office", day[2].Category)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{100, "1h 40m"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, aggregate.FormatMinutes(tt.minutes))
	}
}
