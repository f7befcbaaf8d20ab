package clock

import (
	"fmt"
	"time"
)

// YMD layout used for day buckets everywhere in the tracker.
const YMDLayout = "2006-01-02"

// ToYMD formats t's local calendar day as YYYY-MM-DD.
func ToYMD(t time.Time) string {
	return t.Format(YMDLayout)
}

// FromYMD parses a YYYY-MM-DD string into midnight of that day, local time.
func FromYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(YMDLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// AddDays returns the same wall-clock moment n calendar days away.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// FormatHM renders t's local time of day as HH:MM.
func FormatHM(t time.Time) string {
	return t.Format("15:04")
}

// ResolveHM combines a YYYY-MM-DD bucket with an HH:MM time of day into an
// absolute local instant. The bucket, not "today", anchors the result.
func ResolveHM(ymd, hm string) (time.Time, error) {
	day, err := FromYMD(ymd)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM): %w", hm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), 0, 0, time.Local), nil
}
