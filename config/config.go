// Package config loads session settings for easycurses programs from YAML.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted by LoadFromEnv
const EnvPath = "EASYCURSES_CONFIG"

// Cursor visibility names
const (
	CursorInvisible     = "invisible"
	CursorVisible       = "visible"
	CursorHighlyVisible = "highly_visible"
)

// Bell modes
const (
	BellTerminal = "terminal"
	BellTone     = "tone"
	BellOff      = "off"
)

// MaxColorPairs is the upper bound for max_color_pairs, pair 0 excluded
const MaxColorPairs = 255

// Colors holds a foreground/background color pair by name or #rrggbb
type Colors struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// Tone parameters for the audible bell
type Tone struct {
	FrequencyHz float64 `yaml:"frequency_hz"`
	DurationMs  int     `yaml:"duration_ms"`
}

// Duration returns the tone length
func (t Tone) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// Config is the on-disk settings document
type Config struct {
	Cursor        string  `yaml:"cursor"`
	Echo          bool    `yaml:"echo"`
	MaxColorPairs int     `yaml:"max_color_pairs"`
	DefaultColors *Colors `yaml:"default_colors,omitempty"`
	Bell          string  `yaml:"bell"`
	BellTone      Tone    `yaml:"bell_tone"`
	LogFile       string  `yaml:"log_file,omitempty"`
}

// Default returns curses defaults: visible cursor, echo on, 8x8 color pairs
func Default() *Config {
	return &Config{
		Cursor:        CursorVisible,
		Echo:          true,
		MaxColorPairs: 64,
		Bell:          BellTerminal,
		BellTone: Tone{
			FrequencyHz: 880,
			DurationMs:  50,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFromEnv loads the file named by EASYCURSES_CONFIG, or returns defaults when unset
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerations, ranges and color names
func (c *Config) Validate() error {
	switch c.Cursor {
	case CursorInvisible, CursorVisible, CursorHighlyVisible:
	default:
		return fmt.Errorf("config: unknown cursor %q", c.Cursor)
	}

	if c.MaxColorPairs < 1 || c.MaxColorPairs > MaxColorPairs {
		return fmt.Errorf("config: max_color_pairs %d outside 1..%d", c.MaxColorPairs, MaxColorPairs)
	}

	switch c.Bell {
	case BellTerminal, BellOff:
	case BellTone:
		if c.BellTone.FrequencyHz <= 0 || c.BellTone.DurationMs <= 0 {
			return fmt.Errorf("config: bell_tone needs positive frequency_hz and duration_ms")
		}
	default:
		return fmt.Errorf("config: unknown bell %q", c.Bell)
	}

	if c.DefaultColors != nil {
		if _, err := ColorIndex(c.DefaultColors.Fg); err != nil {
			return fmt.Errorf("config: default_colors.fg: %w", err)
		}
		if _, err := ColorIndex(c.DefaultColors.Bg); err != nil {
			return fmt.Errorf("config: default_colors.bg: %w", err)
		}
	}
	return nil
}

// NewLogger opens LogFile for appending and returns a text logger on it.
// With no LogFile the logger discards and the closer is a no-op.
func (c *Config) NewLogger(level slog.Level) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(c.LogFile) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
