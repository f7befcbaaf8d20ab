package model

import "time"

// LogEntry represents a single tracked work-time record.
type LogEntry struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"` // YYYY-MM-DD bucket, fixed at creation
	Category string     `json:"category"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
	Sent     bool       `json:"sent,omitempty"`
}

// Open reports whether the entry is still running (no end instant yet).
func (e LogEntry) Open() bool {
	return e.End == nil
}
