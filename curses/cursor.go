package curses

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/easycurses/config"
)

// CursorVisibility is the curs_set level. Not every terminal distinguishes
// visible from highly visible.
type CursorVisibility uint8

const (
	CursorInvisible CursorVisibility = iota
	CursorVisible
	CursorHighlyVisible
)

var cursorNames = map[CursorVisibility]string{
	CursorInvisible:     config.CursorInvisible,
	CursorVisible:       config.CursorVisible,
	CursorHighlyVisible: config.CursorHighlyVisible,
}

func (v CursorVisibility) valid() bool {
	return v <= CursorHighlyVisible
}

func (v CursorVisibility) String() string {
	if name, ok := cursorNames[v]; ok {
		return name
	}
	return fmt.Sprintf("CursorVisibility(%d)", uint8(v))
}

// ParseCursorVisibility maps a config name to a visibility level
func ParseCursorVisibility(name string) (CursorVisibility, error) {
	for v, n := range cursorNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("curses: cursor visibility %q: %w", name, ErrInvalidMode)
}

// SetCursorVisibility applies v and returns the previous level. ok is false
// when v is unknown or the session is closed; nothing changes in that case.
func (s *Session) SetCursorVisibility(v CursorVisibility) (prev CursorVisibility, ok bool) {
	if !v.valid() || s.Closed() {
		return s.cursor, false
	}

	prev = s.cursor
	s.cursor = v

	switch v {
	case CursorVisible:
		s.screen.SetCursorStyle(tcell.CursorStyleDefault)
	case CursorHighlyVisible:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	s.syncCursor()
	return prev, true
}

// syncCursor mirrors the logical cursor onto the screen
func (s *Session) syncCursor() {
	if s.cursor == CursorInvisible {
		s.screen.HideCursor()
		return
	}
	s.screen.ShowCursor(s.col, s.row)
}
