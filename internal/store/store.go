package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

const (
	logsFile = "logs.json"
	nameFile = "user"
)

// BaseDir returns the root data directory (~/.ttrack).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ttrack"), nil
}

// Store persists the whole log collection as one JSON blob plus a
// plain-text user-name file. There is no partial-update API: mutators
// load the full collection, change it, and replace it. A single writer
// is assumed; concurrent processes race last-write-wins.
type Store struct {
	base string
}

// New returns a Store rooted at base.
func New(base string) *Store {
	return &Store{base: base}
}

func (s *Store) logsPath() string {
	return filepath.Join(s.base, logsFile)
}

// LoadAll returns every persisted entry. It never fails: a missing,
// unreadable, or corrupt blob reads as an empty collection. A corrupt
// blob is backed up alongside the original before being ignored, so the
// data is recoverable by hand.
func (s *Store) LoadAll() []model.LogEntry {
	data, err := os.ReadFile(s.logsPath())
	if err != nil {
		return []model.LogEntry{}
	}

	var entries []model.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		backupPath := s.logsPath() + ".corrupt"
		_ = os.Rename(s.logsPath(), backupPath)
		return []model.LogEntry{}
	}
	if entries == nil {
		return []model.LogEntry{}
	}
	return entries
}

// ReplaceAll atomically overwrites the persisted collection.
func (s *Store) ReplaceAll(entries []model.LogEntry) error {
	if err := os.MkdirAll(s.base, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	path := s.logsPath()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// LoadName returns the persisted display user name, or "" if none is set.
func (s *Store) LoadName() string {
	data, err := os.ReadFile(filepath.Join(s.base, nameFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveName persists the display user name.
func (s *Store) SaveName(name string) error {
	if err := os.MkdirAll(s.base, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	path := filepath.Join(s.base, nameFile)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(name)+"\n"), 0o600); err != nil {
		return fmt.Errorf("storage error writing user name: %w", err)
	}
	return nil
}
