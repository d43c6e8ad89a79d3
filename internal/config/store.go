package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

const (
	defaultDirName  = ".cafe"
	defaultFileName = "preferences.json"
)

var (
	// ErrPreferencesNotFound is returned when the preferences file does not exist.
	ErrPreferencesNotFound = errors.New("preferences file not found")
	// ErrInvalidPreferences is returned when the preferences payload is malformed.
	ErrInvalidPreferences = errors.New("preferences file is invalid")
)

// Store loads and writes local preferences.
type Store struct {
	path string
}

// NewStore creates a store at path, or at ~/.cafe/preferences.json when path is empty.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) != "" {
		return &Store{path: path}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &Store{path: filepath.Join(home, defaultDirName, defaultFileName)}, nil
}

// Path returns current preferences path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates preferences.
func (s *Store) Load(_ context.Context) (domain.Preferences, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Preferences{}, ErrPreferencesNotFound
		}
		return domain.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	if strings.TrimSpace(prefs.Language) == "" {
		return domain.Preferences{}, fmt.Errorf("%w: language is empty", ErrInvalidPreferences)
	}
	return prefs, nil
}

// Save writes a preferences payload.
func (s *Store) Save(_ context.Context, prefs domain.Preferences) error {
	if strings.TrimSpace(prefs.Language) == "" {
		return fmt.Errorf("%w: language is empty", ErrInvalidPreferences)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}
	payload, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
