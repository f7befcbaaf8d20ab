package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

// Controller owns the single currently-running entry, if any. It is the
// only writer of start/stop transitions and keeps the store's invariant
// that at most one entry is open at a time: starting a category while
// another is running closes the previous entry at the exact instant the
// new one begins, so the two records are back-to-back with no gap.
type Controller struct {
	store   *store.Store
	now     func() time.Time
	current *model.LogEntry
}

// New returns an idle Controller over st. now is the time source; pass
// time.Now outside of tests.
func New(st *store.Store, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{store: st, now: now}
}

// Resume scans the store for an open entry bucketed under the current
// day and adopts it as running, so a restarted process picks up where
// the previous one left off. Open entries from earlier days are left
// alone; the editor can close those.
func (c *Controller) Resume() {
	today := clock.ToYMD(c.now())
	entries := c.store.LoadAll()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Open() && entries[i].Date == today {
			e := entries[i]
			c.current = &e
			return
		}
	}
}

// Running reports whether an entry is currently open.
func (c *Controller) Running() bool {
	return c.current != nil
}

// Current returns a copy of the running entry, or nil when idle.
func (c *Controller) Current() *model.LogEntry {
	if c.current == nil {
		return nil
	}
	e := *c.current
	return &e
}

// Start begins a new entry for category under the date bucket, closing
// any open entry first. It returns the new entry.
func (c *Controller) Start(category, date string) (model.LogEntry, error) {
	now := c.now()

	entries := c.store.LoadAll()
	for i := range entries {
		if entries[i].Open() {
			end := now
			entries[i].End = &end
		}
	}

	entry := model.LogEntry{
		ID:       uuid.NewString(),
		Date:     date,
		Category: category,
		Start:    now,
	}
	entries = append(entries, entry)

	if err := c.store.ReplaceAll(entries); err != nil {
		return model.LogEntry{}, fmt.Errorf("starting %q: %w", category, err)
	}
	c.current = &entry
	return entry, nil
}

// Stop closes the running entry at the current instant and returns it.
// When idle it does nothing and returns nil.
func (c *Controller) Stop() (*model.LogEntry, error) {
	if c.current == nil {
		return nil, nil
	}
	now := c.now()

	entries := c.store.LoadAll()
	for i := range entries {
		if entries[i].ID == c.current.ID {
			end := now
			entries[i].End = &end
			if err := c.store.ReplaceAll(entries); err != nil {
				return nil, fmt.Errorf("stopping %q: %w", c.current.Category, err)
			}
			stopped := entries[i]
			c.current = nil
			return &stopped, nil
		}
	}

	// The entry vanished underneath us (deleted elsewhere); just go idle.
	c.current = nil
	return nil, nil
}

// Release drops the session reference if it points at id. The editor
// calls this when an edit closes, or a delete removes, the open entry.
func (c *Controller) Release(id string) {
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
}
