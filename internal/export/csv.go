package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

// DayCSV renders the given day's entries as CSV, one row per entry in
// start-ascending order. Start and End cells are local "YYYY-MM-DD HH:MM";
// End is blank for an open entry, whose minutes are measured against now.
func DayCSV(date, user string, entries []model.LogEntry, now time.Time) string {
	user = flattenUser(user)

	var b strings.Builder
	b.WriteString("User,Category,Start,End,Minutes\n")
	for _, e := range aggregate.ForDay(date, entries) {
		end := ""
		if e.End != nil {
			end = date + " " + clock.FormatHM(*e.End)
		}
		row := []string{
			user,
			e.Category,
			date + " " + clock.FormatHM(e.Start),
			end,
			fmt.Sprintf("%d", aggregate.Minutes(e.Start, e.End, now)),
		}
		for i, f := range row {
			row[i] = escape(f)
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// FileName builds the export filename, embedding the date and a user name
// stripped of characters that are reserved on common filesystems.
func FileName(date, user string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, flattenUser(user))
	return fmt.Sprintf("time_log_%s_%s.csv", date, safe)
}

// flattenUser collapses newlines and commas in the display name so it
// stays a single CSV-friendly token, defaulting to "unknown" when empty.
func flattenUser(user string) string {
	user = strings.NewReplacer("\r", " ", "\n", " ", ",", " ").Replace(user)
	user = strings.TrimSpace(user)
	if user == "" {
		return "unknown"
	}
	return user
}

// escape wraps a field in quotes if it contains a comma, quote, or newline.
func escape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
