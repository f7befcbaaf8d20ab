package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/export"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

func entry(id, date, category, startHM, endHM string) model.LogEntry {
	start, _ := clock.ResolveHM(date, startHM)
	e := model.LogEntry{ID: id, Date: date, Category: category, Start: start}
	if endHM != "" {
		end, _ := clock.ResolveHM(date, endHM)
		e.End = &end
	}
	return e
}

func TestDayCSVBasic(t *testing.T) {
	entries := []model.LogEntry{
		entry("e2", "2026-02-27", "SiteVisit", "09:30", "12:00"),
		entry("e1", "2026-02-27", "Travel", "09:00", "09:30"),
	}
	now := time.Date(2026, 2, 27, 13, 0, 0, 0, time.Local)

	csv := export.DayCSV("2026-02-27", "Tanaka", entries, now)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), csv)
	}
	if lines[0] != "User,Category,Start,End,Minutes" {
		t.Errorf("header = %q", lines[0])
	}
	// Rows are sorted by start time, earliest first.
	if lines[1] != "Tanaka,Travel,2026-02-27 09:00,2026-02-27 09:30,30" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Tanaka,SiteVisit,2026-02-27 09:30,2026-02-27 12:00,150" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestDayCSVOpenEntryHasBlankEnd(t *testing.T) {
	entries := []model.LogEntry{
		entry("e1", "2026-02-27", "Office", "09:00", ""),
	}
	now := time.Date(2026, 2, 27, 9, 45, 0, 0, time.Local)

	csv := export.DayCSV("2026-02-27", "Tanaka", entries, now)
	if !strings.Contains(csv, "Tanaka,Office,2026-02-27 09:00,,45\n") {
		t.Errorf("open entry row wrong:\n%s", csv)
	}
}

func TestDayCSVQuotesSpecialCharacters(t *testing.T) {
	entries := []model.LogEntry{
		entry("e1", "2026-02-27", "Office, Admin", "09:00", "10:00"),
	}
	now := time.Date(2026, 2, 27, 13, 0, 0, 0, time.Local)

	csv := export.DayCSV("2026-02-27", "Tanaka", entries, now)
	if !strings.Contains(csv, `Tanaka,"Office, Admin",2026-02-27 09:00,2026-02-27 10:00,60`) {
		t.Errorf("comma category not quoted:\n%s", csv)
	}
}

func TestDayCSVEscapesQuotes(t *testing.T) {
	entries := []model.LogEntry{
		entry("e1", "2026-02-27", `Say "hi"`, "09:00", "10:00"),
	}
	now := time.Date(2026, 2, 27, 13, 0, 0, 0, time.Local)

	csv := export.DayCSV("2026-02-27", "Tanaka", entries, now)
	if !strings.Contains(csv, `"Say ""hi"""`) {
		t.Errorf("quotes not doubled:\n%s", csv)
	}
}

func TestDayCSVFlattensUserName(t *testing.T) {
	now := time.Date(2026, 2, 27, 13, 0, 0, 0, time.Local)
	entries := []model.LogEntry{
		entry("e1", "2026-02-27", "Office", "09:00", "10:00"),
	}

	csv := export.DayCSV("2026-02-27", "Tanaka,\nTaro", entries, now)
	if !strings.HasPrefix(strings.Split(csv, "\n")[1], "Tanaka  Taro,") {
		t.Errorf("user name not flattened:\n%s", csv)
	}

	csv = export.DayCSV("2026-02-27", "   ", entries, now)
	if !strings.HasPrefix(strings.Split(csv, "\n")[1], "unknown,") {
		t.Errorf("empty user not defaulted:\n%s", csv)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"Tanaka", "time_log_2026-02-27_Tanaka.csv"},
		{`Ta/na\ka:*?"<>|`, "time_log_2026-02-27_Tanaka.csv"},
		{"", "time_log_2026-02-27_unknown.csv"},
	}
	for _, tt := range tests {
		got := export.FileName("2026-02-27", tt.user)
		if got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}
