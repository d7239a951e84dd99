// Package session persists the small bits of UI state worth restoring when
// the same pair of files is opened again: pane titles, split ratio, and the
// scroll-sync toggle.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// State is the remembered UI state for one left/right pair.
type State struct {
	LeftTitle  string  `json:"left_title,omitempty"`
	RightTitle string  `json:"right_title,omitempty"`
	SplitRatio float64 `json:"split_ratio,omitempty"`
	SyncScroll *bool   `json:"sync_scroll,omitempty"`
}

// Key identifies a pair of files regardless of how their paths were
// spelled on the command line.
func Key(leftPath, rightPath string) string {
	return canonical(leftPath) + "|" + canonical(rightPath)
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

type Store struct {
	path string
}

// NewStore keeps sessions.json inside dir, normally the application's
// config directory.
func NewStore(dir string) Store {
	return Store{path: filepath.Join(dir, "sessions.json")}
}

func (s Store) Load() (map[string]State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]State{}, nil
		}
		return nil, err
	}

	out := map[string]State{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Store) Save(states map[string]State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// Get loads the state for one pair; ok is false when nothing is stored or
// the store is unreadable.
func (s Store) Get(key string) (State, bool) {
	states, err := s.Load()
	if err != nil {
		return State{}, false
	}
	st, ok := states[key]
	return st, ok
}

// Put stores the state for one pair, keeping every other entry.
func (s Store) Put(key string, st State) error {
	states, err := s.Load()
	if err != nil {
		states = map[string]State{}
	}
	states[key] = st
	return s.Save(states)
}
