package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/betterrest/internal/bedtime"
)

// ErrInvalidConfig marks values that parse as TOML but make no sense.
var ErrInvalidConfig = errors.New("invalid config")

// Config captures the settings BetterRest reads at startup.
type Config struct {
	ModelPath     string  // empty uses the embedded coefficient table
	LogFile       string  // empty disables logging
	LogLevel      string
	DefaultWake   string  // "HH:MM"
	DefaultSleep  float64 // hours
	DefaultCoffee int     // cups
}

const (
	defaultConfigPath = "~/.config/betterrest/config.toml"
	defaultLogFile    = "~/.local/state/betterrest/betterrest.log"
	defaultLogLevel   = "info"
	defaultWake       = "07:00"
	defaultSleep      = 8.0
	defaultCoffee     = 1
)

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
		DefaultWake:   defaultWake,
		DefaultSleep:  defaultSleep,
		DefaultCoffee: defaultCoffee,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ModelPath     string   `toml:"model_path"`
		LogFile       *string  `toml:"log_file"`
		LogLevel      string   `toml:"log_level"`
		DefaultWake   string   `toml:"default_wake"`
		DefaultSleep  *float64 `toml:"default_sleep"`
		DefaultCoffee *int     `toml:"default_coffee"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if model := strings.TrimSpace(raw.ModelPath); model != "" {
		cfg.ModelPath = mustExpand(model)
	}

	// An explicitly empty log_file turns logging off.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if logFile := strings.TrimSpace(*raw.LogFile); logFile != "" {
			cfg.LogFile = mustExpand(logFile)
		}
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if wake := strings.TrimSpace(raw.DefaultWake); wake != "" {
		cfg.DefaultWake = wake
	}
	if raw.DefaultSleep != nil {
		cfg.DefaultSleep = *raw.DefaultSleep
	}
	if raw.DefaultCoffee != nil {
		cfg.DefaultCoffee = *raw.DefaultCoffee
	}

	if err := cfg.validateDefaults(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateDefaults holds the starting inputs to the ranges the input fields
// can show.
func (c Config) validateDefaults() error {
	wake, err := bedtime.ParseWake(c.DefaultWake, time.Now())
	if err != nil {
		return fmt.Errorf("%w: default_wake %q is not HH:MM", ErrInvalidConfig, c.DefaultWake)
	}
	in := bedtime.Inputs{Wake: wake, SleepGoal: c.DefaultSleep, Coffee: c.DefaultCoffee}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: defaults: %w", ErrInvalidConfig, err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
