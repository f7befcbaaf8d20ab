package editor

import (
	"errors"
	"fmt"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/session"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

// ErrStartRequired is returned when an edit omits the start time.
var ErrStartRequired = errors.New("start time is required")

// Editor applies manual corrections to existing entries and keeps the
// session controller consistent when the open entry is touched.
type Editor struct {
	store   *store.Store
	session *session.Controller
}

// New returns an Editor over st that reconciles ctrl on changes.
func New(st *store.Store, ctrl *session.Controller) *Editor {
	return &Editor{store: st, session: ctrl}
}

// Edit rewrites the category, start, and end of the entry identified by
// id. startHM is a mandatory HH:MM time of day; endHM may be empty, in
// which case the entry is re-opened (end becomes nil). An empty category
// leaves the existing label in place. Both times are resolved against
// the entry's original date bucket, never against today. An unknown id
// is a silent no-op: the entry may have been deleted by another process,
// and there is nothing useful to recover.
func (e *Editor) Edit(id, category, startHM, endHM string) error {
	if startHM == "" {
		return ErrStartRequired
	}

	entries := e.store.LoadAll()
	for i := range entries {
		if entries[i].ID != id {
			continue
		}

		start, err := clock.ResolveHM(entries[i].Date, startHM)
		if err != nil {
			return fmt.Errorf("editing entry: %w", err)
		}

		if category != "" {
			entries[i].Category = category
		}
		entries[i].Start = start
		entries[i].End = nil
		if endHM != "" {
			end, err := clock.ResolveHM(entries[i].Date, endHM)
			if err != nil {
				return fmt.Errorf("editing entry: %w", err)
			}
			entries[i].End = &end
		}

		// Closing the open entry by hand ends the session. Re-opening a
		// closed one does not adopt it: the session stays idle.
		if entries[i].End != nil && e.session != nil {
			e.session.Release(id)
		}

		return e.store.ReplaceAll(entries)
	}
	return nil
}

// Delete removes the entry identified by id. Unknown ids are a no-op.
func (e *Editor) Delete(id string) error {
	entries := e.store.LoadAll()
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if e.session != nil {
			e.session.Release(id)
		}
		return e.store.ReplaceAll(entries)
	}
	return nil
}
