package curses

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabWidth = 8

// Print draws text at the cursor with the active style and advances it.
// Lines wrap at the right edge, '\n' starts the next row. Text that would
// run past the last row is dropped and ErrOutOfBounds returned; nothing is
// scrolled. Output appears on the next Refresh.
func (s *Session) Print(text string) error {
	if s.Closed() {
		return ErrClosed
	}
	defer s.syncCursor()

	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if err := s.put(cluster); err != nil {
			return err
		}
	}
	return nil
}

// PrintRune draws a single character
func (s *Session) PrintRune(r rune) error {
	return s.Print(string(r))
}

// Printf formats and prints
func (s *Session) Printf(format string, args ...any) error {
	return s.Print(fmt.Sprintf(format, args...))
}

// put draws one grapheme cluster and advances the cursor
func (s *Session) put(cluster string) error {
	rows, cols := s.Size()
	if s.row >= rows {
		return ErrOutOfBounds
	}

	switch cluster {
	case "\n", "\r\n":
		s.row++
		s.col = 0
		return nil
	case "\r":
		s.col = 0
		return nil
	case "\t":
		s.col = (s.col/tabWidth + 1) * tabWidth
		if s.col >= cols {
			s.row++
			s.col = 0
		}
		return nil
	}

	w := runewidth.StringWidth(cluster)
	if w == 0 {
		// Control characters and lone combining marks occupy no cell
		return nil
	}
	if w > cols {
		return ErrOutOfBounds
	}

	if s.col+w > cols {
		s.row++
		s.col = 0
		if s.row >= rows {
			return ErrOutOfBounds
		}
	}

	runes := []rune(cluster)
	s.screen.SetContent(s.col, s.row, runes[0], runes[1:], s.style())
	s.col += w
	if s.col >= cols {
		s.row++
		s.col = 0
	}
	return nil
}
