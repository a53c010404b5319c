// Package theme persists the UI theme preference. The on-disk shape is
// {"theme":"light"|"dark"} under the fixed "karma-theme" name, stable
// across client implementations so an existing preference carries over.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"karma/internal/log"
)

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StateName is the fixed namespace the preference is stored under.
const StateName = "karma-theme"

type Theme string

func (t Theme) IsValid() bool {
	return t == Light || t == Dark
}

// state is the persisted wire shape.
type state struct {
	Theme Theme `json:"theme"`
}

// Store holds the current theme and writes every toggle through to
// disk. Reads at startup; missing or corrupt state falls back to light.
type Store struct {
	mu     sync.Mutex
	path   string
	theme  Theme
	logger *log.Logger
}

// Open loads the persisted preference from dir (the state file is named
// after StateName). A missing file is not an error.
func Open(dir string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	s := &Store{
		path:   filepath.Join(dir, StateName+".json"),
		theme:  Light,
		logger: logger.WithComponent(log.ComponentTheme),
	}

	raw, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read theme state: %w", err)
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil || !st.Theme.IsValid() {
		s.logger.Warn("Ignoring corrupt theme state", log.FieldError, err)
		return s, nil
	}
	s.theme = st.Theme
	return s, nil
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Toggle flips between light and dark and persists the result.
func (s *Store) Toggle() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == Light {
		s.theme = Dark
	} else {
		s.theme = Light
	}
	if err := s.write(); err != nil {
		return s.theme, err
	}
	return s.theme, nil
}

// Set applies a specific theme and persists it.
func (s *Store) Set(t Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid theme %q", t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	return s.write()
}

func (s *Store) write() error {
	raw, err := json.Marshal(state{Theme: s.theme})
	if err != nil {
		return fmt.Errorf("encode theme state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write theme state: %w", err)
	}
	return nil
}
