package curses

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/easycurses/bell"
	"github.com/lixenwraith/easycurses/config"
)

// defaultMaxPairs covers every combination of the 8 base colors
const defaultMaxPairs = 64

type options struct {
	screen      tcell.Screen
	logger      *slog.Logger
	ringer      bell.Ringer
	cursor      CursorVisibility
	echo        bool
	maxPairs    int
	defaultPair *ColorPair
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		cursor:   CursorVisible,
		echo:     true,
		maxPairs: defaultMaxPairs,
	}
}

// Option configures Initialize
type Option func(*options) error

// WithScreen uses an existing, uninitialized tcell screen instead of the
// controlling terminal. Tests pass a tcell.SimulationScreen here.
func WithScreen(screen tcell.Screen) Option {
	return func(o *options) error {
		if screen == nil {
			return fmt.Errorf("curses: nil screen")
		}
		o.screen = screen
		return nil
	}
}

// WithLogger sets the lifecycle logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithBell replaces the terminal bell used by Beep
func WithBell(r bell.Ringer) Option {
	return func(o *options) error {
		o.ringer = r
		return nil
	}
}

// WithCursor sets the cursor visibility applied right after initialization
func WithCursor(v CursorVisibility) Option {
	return func(o *options) error {
		if !v.valid() {
			return fmt.Errorf("curses: cursor visibility %d: %w", v, ErrInvalidMode)
		}
		o.cursor = v
		return nil
	}
}

// WithEcho sets the initial echo mode
func WithEcho(enabled bool) Option {
	return func(o *options) error {
		o.echo = enabled
		return nil
	}
}

// WithMaxColorPairs bounds the number of color pairs the session may define
func WithMaxColorPairs(n int) Option {
	return func(o *options) error {
		if n < 1 || n > config.MaxColorPairs {
			return fmt.Errorf("curses: max color pairs %d outside 1..%d", n, config.MaxColorPairs)
		}
		o.maxPairs = n
		return nil
	}
}

// WithDefaultColors makes p the active pair and the screen background
func WithDefaultColors(p ColorPair) Option {
	return func(o *options) error {
		if err := p.validate(); err != nil {
			return err
		}
		o.defaultPair = &p
		return nil
	}
}

// WithConfig applies a loaded config document
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("curses: nil config")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		v, err := ParseCursorVisibility(cfg.Cursor)
		if err != nil {
			return err
		}
		o.cursor = v
		o.echo = cfg.Echo
		o.maxPairs = cfg.MaxColorPairs

		if cfg.DefaultColors != nil {
			fg, _ := config.ColorIndex(cfg.DefaultColors.Fg)
			bg, _ := config.ColorIndex(cfg.DefaultColors.Bg)
			o.defaultPair = &ColorPair{Fg: Color(fg), Bg: Color(bg)}
		}

		switch cfg.Bell {
		case config.BellTone:
			o.ringer = bell.NewTone(cfg.BellTone.FrequencyHz, cfg.BellTone.Duration())
		case config.BellOff:
			o.ringer = bell.Off{}
		}
		return nil
	}
}
