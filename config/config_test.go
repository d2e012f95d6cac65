package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	input := []byte(`
cursor: invisible
echo: false
max_color_pairs: 16
default_colors:
  fg: white
  bg: "#000080"
bell: tone
bell_tone:
  frequency_hz: 440
  duration_ms: 120
`)

	cfg, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Cursor != CursorInvisible {
		t.Errorf("cursor = %q, want %q", cfg.Cursor, CursorInvisible)
	}
	if cfg.Echo {
		t.Error("echo should be false")
	}
	if cfg.MaxColorPairs != 16 {
		t.Errorf("max_color_pairs = %d, want 16", cfg.MaxColorPairs)
	}
	if cfg.DefaultColors == nil || cfg.DefaultColors.Fg != "white" {
		t.Fatalf("default_colors mismatch: %+v", cfg.DefaultColors)
	}
	if cfg.Bell != BellTone || cfg.BellTone.FrequencyHz != 440 {
		t.Errorf("bell mismatch: %q %+v", cfg.Bell, cfg.BellTone)
	}
	if got := cfg.BellTone.Duration().Milliseconds(); got != 120 {
		t.Errorf("tone duration = %dms, want 120ms", got)
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("cursor: highly_visible\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cfg.Echo {
		t.Error("echo default lost")
	}
	if cfg.MaxColorPairs != 64 {
		t.Errorf("max_color_pairs = %d, want 64", cfg.MaxColorPairs)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Unknown cursor", "cursor: blinking\n"},
		{"Zero pairs", "max_color_pairs: 0\n"},
		{"Too many pairs", "max_color_pairs: 300\n"},
		{"Unknown bell", "bell: siren\n"},
		{"Tone without frequency", "bell: tone\nbell_tone:\n  frequency_hz: 0\n"},
		{"Bad color name", "default_colors:\n  fg: mauve\n  bg: black\n"},
		{"Bad hex", "default_colors:\n  fg: \"#zzzzzz\"\n  bg: black\n"},
		{"Malformed yaml", "cursor: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curses.yaml")
	if err := os.WriteFile(path, []byte("echo: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Echo {
		t.Error("echo should be false")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Cursor != CursorVisible {
		t.Errorf("expected defaults, got cursor %q", cfg.Cursor)
	}

	path := filepath.Join(t.TempDir(), "curses.yaml")
	if err := os.WriteFile(path, []byte("cursor: invisible\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Cursor != CursorInvisible {
		t.Errorf("cursor = %q, want invisible", cfg.Cursor)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	logger, closer, err := cfg.NewLogger(0)
	if err != nil || logger == nil {
		t.Fatalf("discard logger: %v", err)
	}
	closer.Close()

	cfg.LogFile = filepath.Join(t.TempDir(), "curses.log")
	logger, closer, err = cfg.NewLogger(0)
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}
	logger.Info("session started")
	closer.Close()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
