package curses

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	testCols = 40
	testRows = 10
)

// countingScreen records how often the terminal was restored
type countingScreen struct {
	tcell.SimulationScreen
	finis int
}

func (c *countingScreen) Fini() {
	c.finis++
	c.SimulationScreen.Fini()
}

func newCountingScreen() *countingScreen {
	return &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
}

// newTestSession initializes a session on a 40x10 simulation screen
func newTestSession(t *testing.T, opts ...Option) (*Session, *countingScreen) {
	t.Helper()

	cs := newCountingScreen()
	s, err := Initialize(append([]Option{WithScreen(cs)}, opts...)...)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(s.Close)

	cs.SetSize(testCols, testRows)
	if rows, cols := s.Size(); rows != testRows || cols != testCols {
		t.Fatalf("screen is %dx%d, want %dx%d", cols, rows, testCols, testRows)
	}
	return s, cs
}

// nextInput reads input, skipping resize events from screen setup
func nextInput(t *testing.T, s *Session) Input {
	t.Helper()

	done := make(chan Input, 1)
	go func() {
		for {
			in, ok := s.GetInput()
			if !ok {
				close(done)
				return
			}
			if in.Kind != InputResize {
				done <- in
				return
			}
		}
	}()

	select {
	case in, ok := <-done:
		if !ok {
			t.Fatal("GetInput reported closed session")
		}
		return in
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for input")
	}
	return Input{}
}

// cellText returns the text drawn at (row, col) including combining runes
func cellText(s *Session, row, col int) string {
	mainc, combc, _, _ := s.Screen().GetContent(col, row)
	return string(append([]rune{mainc}, combc...))
}
