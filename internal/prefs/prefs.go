// Package prefs handles BetterRest user preferences persistence.
// Preferences are stored in ~/.config/betterrest/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/betterrest/internal/bedtime"
)

// Prefs holds user preferences for BetterRest.
type Prefs struct {
	Theme string              `toml:"theme"`
	Clock bedtime.ClockFormat `toml:"clock"`
}

const (
	defaultPrefsPath = "~/.config/betterrest/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Clock: bedtime.Clock12h}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if the
// file is missing or unreadable.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Defaults()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults()
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults()
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	clock, err := bedtime.ParseClockFormat(string(p.Clock))
	if err != nil {
		clock = bedtime.Clock12h
	}
	p.Clock = clock

	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
