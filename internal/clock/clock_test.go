package clock_test

import (
	"testing"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
)

func TestToYMDFromYMDRoundTrip(t *testing.T) {
	day, err := clock.FromYMD("2026-02-27")
	if err != nil {
		t.Fatalf("FromYMD: %v", err)
	}
	if got := clock.ToYMD(day); got != "2026-02-27" {
		t.Errorf("ToYMD(FromYMD) = %q, want %q", got, "2026-02-27")
	}
}

func TestFromYMDInvalid(t *testing.T) {
	for _, s := range []string{"", "2026-2-27", "27.02.2026", "2026-13-01"} {
		if _, err := clock.FromYMD(s); err == nil {
			t.Errorf("FromYMD(%q): expected error, got nil", s)
		}
	}
}

func TestAddDays(t *testing.T) {
	day, _ := clock.FromYMD("2026-02-28")
	if got := clock.ToYMD(clock.AddDays(day, 1)); got != "2026-03-01" {
		t.Errorf("AddDays(+1) = %q, want %q", got, "2026-03-01")
	}
	if got := clock.ToYMD(clock.AddDays(day, -1)); got != "2026-02-27" {
		t.Errorf("AddDays(-1) = %q, want %q", got, "2026-02-27")
	}
}

func TestResolveHM(t *testing.T) {
	got, err := clock.ResolveHM("2026-02-27", "09:30")
	if err != nil {
		t.Fatalf("ResolveHM: %v", err)
	}
	want := time.Date(2026, 2, 27, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ResolveHM = %v, want %v", got, want)
	}
	if clock.FormatHM(got) != "09:30" {
		t.Errorf("FormatHM = %q, want %q", clock.FormatHM(got), "09:30")
	}
}

func TestResolveHMInvalid(t *testing.T) {
	tests := []struct {
		ymd, hm string
	}{
		{"2026-02-27", ""},
		{"2026-02-27", "9am"},
		{"2026-02-27", "25:00"},
		{"not-a-date", "09:00"},
	}
	for _, tt := range tests {
		if _, err := clock.ResolveHM(tt.ymd, tt.hm); err == nil {
			t.Errorf("ResolveHM(%q, %q): expected error, got nil", tt.ymd, tt.hm)
		}
	}
}
