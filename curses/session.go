package curses

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/easycurses/bell"
)

var (
	ErrNotTerminal        = errors.New("curses: stdin/stdout is not a terminal")
	ErrSessionActive      = errors.New("curses: a session is already live")
	ErrClosed             = errors.New("curses: session closed")
	ErrInvalidColor       = errors.New("curses: color outside the base palette")
	ErrInvalidMode        = errors.New("curses: invalid mode")
	ErrPairSlotsExhausted = errors.New("curses: no free color pair slots")
	ErrOutOfBounds        = errors.New("curses: position outside the screen")
)

// live is set while a Session exists; tcell owns the tty exclusively
var live atomic.Bool

// fatal stops the process on programmer misuse
var fatal = log.Fatalf

// newScreen opens the controlling terminal
var newScreen = tcell.NewScreen

// Live reports whether a session is currently initialized
func Live() bool {
	return live.Load()
}

// Session is the single handle to curses mode. All drawing happens at the
// logical cursor (row, col) with the active color pair and attributes.
type Session struct {
	screen tcell.Screen
	logger *slog.Logger
	ringer bell.Ringer

	pairs     *pairCache
	pair      PairID
	bold      bool
	underline bool

	echo   bool
	cursor CursorVisibility
	row    int
	col    int

	closeOnce sync.Once
	closed    atomic.Bool
}

// Initialize puts the terminal into curses mode. A second call while a
// session is live is a programming error and stops the process.
func Initialize(opts ...Option) (*Session, error) {
	if !live.CompareAndSwap(false, true) {
		fatal("curses: Initialize called while a session is live")
		// Reached only when fatal does not exit
		return nil, ErrSessionActive
	}

	// Released on error and on a panic inside an option or screen.Init
	ok := false
	defer func() {
		if !ok {
			live.Store(false)
		}
	}()

	s, err := initialize(opts)
	if err != nil {
		return nil, err
	}
	ok = true
	return s, nil
}

func initialize(opts []Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	screen := o.screen
	if screen == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, ErrNotTerminal
		}
		var err error
		if screen, err = newScreen(); err != nil {
			return nil, fmt.Errorf("curses: new screen: %w", err)
		}
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("curses: screen init: %w", err)
	}

	s := &Session{
		screen: screen,
		logger: o.logger,
		ringer: o.ringer,
		pairs:  newPairCache(o.maxPairs),
		echo:   o.echo,
		cursor: CursorInvisible,
	}
	if s.ringer == nil {
		s.ringer = bell.Terminal{Screen: screen}
	}

	if o.defaultPair != nil {
		if err := s.SetColorPair(*o.defaultPair); err != nil {
			screen.Fini()
			return nil, err
		}
		screen.SetStyle(s.style())
	}

	screen.Clear()
	s.SetCursorVisibility(o.cursor)

	w, h := screen.Size()
	s.logger.Info("curses session initialized", "cols", w, "rows", h, "colors", screen.Colors())
	return s, nil
}

// Close restores the terminal. Only the first call has any effect.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		defer live.Store(false)
		s.screen.Fini()
		s.logger.Info("curses session closed")
	})
}

// Closed reports whether Close has run
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// Screen exposes the underlying tcell screen for operations this package does not wrap
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Refresh pushes pending drawing to the terminal
func (s *Session) Refresh() {
	if s.Closed() {
		return
	}
	s.screen.Show()
}

// Clear blanks the screen and homes the cursor
func (s *Session) Clear() {
	if s.Closed() {
		return
	}
	s.screen.Clear()
	s.row, s.col = 0, 0
	s.syncCursor()
}

// Size returns the screen dimensions in rows and columns
func (s *Session) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// MoveRC places the cursor at (row, col), both 0-indexed
func (s *Session) MoveRC(row, col int) error {
	if s.Closed() {
		return ErrClosed
	}
	rows, cols := s.Size()
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return fmt.Errorf("curses: move to %d,%d on %dx%d: %w", row, col, rows, cols, ErrOutOfBounds)
	}
	s.row, s.col = row, col
	s.syncCursor()
	return nil
}

// CursorRC returns the cursor position
func (s *Session) CursorRC() (row, col int) {
	return s.row, s.col
}

// SetEcho controls whether GetInput draws typed characters
func (s *Session) SetEcho(enabled bool) {
	s.echo = enabled
}

// Echo reports the echo mode
func (s *Session) Echo() bool {
	return s.echo
}

// SetBold toggles bold on the active style
func (s *Session) SetBold(on bool) {
	s.bold = on
}

// SetUnderline toggles underline on the active style
func (s *Session) SetUnderline(on bool) {
	s.underline = on
}

// Beep rings the configured bell
func (s *Session) Beep() error {
	if s.Closed() {
		return ErrClosed
	}
	if err := s.ringer.Ring(); err != nil {
		s.logger.Warn("bell failed", "error", err)
		return err
	}
	return nil
}

// style composes the active pair and attributes
func (s *Session) style() tcell.Style {
	st := tcell.StyleDefault
	if p, ok := s.pairs.pair(s.pair); ok {
		st = st.Foreground(p.Fg.tcell()).Background(p.Bg.tcell())
	}
	if s.bold {
		st = st.Bold(true)
	}
	if s.underline {
		st = st.Underline(true)
	}
	return st
}
