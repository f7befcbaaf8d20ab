package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/config"
	"github.com/SHOSESHOSE/time-tracker/internal/editor"
	"github.com/SHOSESHOSE/time-tracker/internal/session"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

// app bundles the wired-up services every command works against.
type app struct {
	cfg     config.Config
	store   *store.Store
	session *session.Controller
	editor  *editor.Editor
}

// newApp builds the store, session controller, and editor, resuming any
// open entry from the current day. Environment failures (no home
// directory) are unrecoverable and exit directly.
func newApp() *app {
	base, err := store.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	st := store.New(base)
	sess := session.New(st, time.Now)
	sess.Resume()

	return &app{
		cfg:     cfg,
		store:   st,
		session: sess,
		editor:  editor.New(st, sess),
	}
}

// resolveDate parses a --date flag value, defaulting to today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return clock.ToYMD(time.Now()), nil
	}
	d, err := clock.FromYMD(flag)
	if err != nil {
		return "", err
	}
	return clock.ToYMD(d), nil
}

// userName returns the persisted display name, or "unknown".
func (a *app) userName() string {
	if n := a.store.LoadName(); n != "" {
		return n
	}
	return "unknown"
}
