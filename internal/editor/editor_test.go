package editor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/editor"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
	"github.com/SHOSESHOSE/time-tracker/internal/session"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

func seed(t *testing.T, entries ...model.LogEntry) (*store.Store, *session.Controller, *editor.Editor) {
	t.Helper()
	st := store.New(t.TempDir())
	require.NoError(t, st.ReplaceAll(entries))
	sess := session.New(st, time.Now)
	return st, sess, editor.New(st, sess)
}

func closedEntry(id, date string) model.LogEntry {
	start, _ := clock.ResolveHM(date, "09:00")
	end, _ := clock.ResolveHM(date, "09:30")
	return model.LogEntry{
		ID:       id,
		Date:     date,
		Category: "Office",
		Start:    start,
		End:      &end,
	}
}

func TestEditRequiresStart(t *testing.T) {
	st, _, ed := seed(t, closedEntry("e1", "2026-02-27"))

	err := ed.Edit("e1", "Travel", "", "10:00")
	assert.ErrorIs(t, err, editor.ErrStartRequired)

	// Nothing changed.
	entries := st.LoadAll()
	assert.Equal(t, "Office", entries[0].Category)
}

func TestEditRoundTripsLocalTimes(t *testing.T) {
	st, _, ed := seed(t, closedEntry("e1", "2026-02-27"))

	require.NoError(t, ed.Edit("e1", "Travel", "08:15", "11:45"))

	entries := st.LoadAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "Travel", entries[0].Category)
	assert.Equal(t, "08:15", clock.FormatHM(entries[0].Start))
	require.NotNil(t, entries[0].End)
	assert.Equal(t, "11:45", clock.FormatHM(*entries[0].End))
}

func TestEditResolvesAgainstEntryDate(t *testing.T) {
	// The entry lives three days in the past; the new times must land on
	// that day, not on today.
	st, _, ed := seed(t, closedEntry("e1", "2026-02-24"))

	require.NoError(t, ed.Edit("e1", "Office", "10:00", "10:30"))

	entries := st.LoadAll()
	assert.Equal(t, "2026-02-24", entries[0].Date)
	assert.Equal(t, "2026-02-24", clock.ToYMD(entries[0].Start))
}

func TestEditEmptyEndReopensWithoutAdoptingSession(t *testing.T) {
	st, sess, ed := seed(t, closedEntry("e1", "2026-02-27"))

	require.NoError(t, ed.Edit("e1", "Office", "09:00", ""))

	entries := st.LoadAll()
	assert.True(t, entries[0].Open())
	// The editor re-opens the record but does not hand it to the session.
	assert.False(t, sess.Running())
}

func TestEditClosingOpenEntryReleasesSession(t *testing.T) {
	st := store.New(t.TempDir())
	sess := session.New(st, time.Now)
	ed := editor.New(st, sess)

	entry, err := sess.Start("SiteVisit", clock.ToYMD(time.Now()))
	require.NoError(t, err)
	require.True(t, sess.Running())

	require.NoError(t, ed.Edit(entry.ID, "SiteVisit", "09:00", "09:30"))
	assert.False(t, sess.Running())
}

func TestEditEmptyCategoryKeepsLabel(t *testing.T) {
	st, _, ed := seed(t, closedEntry("e1", "2026-02-27"))

	require.NoError(t, ed.Edit("e1", "", "09:15", "09:45"))

	entries := st.LoadAll()
	assert.Equal(t, "Office", entries[0].Category)
	assert.Equal(t, "09:15", clock.FormatHM(entries[0].Start))
}

func TestEditUnknownIDIsNoop(t *testing.T) {
	st, _, ed := seed(t, closedEntry("e1", "2026-02-27"))

	require.NoError(t, ed.Edit("missing", "Travel", "10:00", "11:00"))

	entries := st.LoadAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "Office", entries[0].Category)
}

func TestDeleteRemovesEntry(t *testing.T) {
	st, _, ed := seed(t,
		closedEntry("e1", "2026-02-27"),
		closedEntry("e2", "2026-02-27"),
	)

	require.NoError(t, ed.Delete("e1"))

	entries := st.LoadAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "e2", entries[0].ID)
}

func TestDeleteOpenEntryReleasesSession(t *testing.T) {
	st := store.New(t.TempDir())
	sess := session.New(st, time.Now)
	ed := editor.New(st, sess)

	entry, err := sess.Start("Break", clock.ToYMD(time.Now()))
	require.NoError(t, err)

	require.NoError(t, ed.Delete(entry.ID))
	assert.False(t, sess.Running())
	assert.Empty(t, st.LoadAll())
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	st, _, ed := seed(t, closedEntry("e1", "2026-02-27"))

	require.NoError(t, ed.Delete("missing"))
	assert.Len(t, st.LoadAll(), 1)
}
