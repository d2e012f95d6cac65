package curses

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var (
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// Go runs fn in a new goroutine. A panic there cannot reach the deferred
// Close of the goroutine that owns the session, so it is handled here:
// the terminal is restored, the panic and stack go to stderr, and the
// process exits with status 1.
func (s *Session) Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.handleCrash(r)
			}
		}()
		fn()
	}()
}

func (s *Session) handleCrash(r any) {
	stack := debug.Stack()
	s.logger.Error("goroutine crashed", "panic", fmt.Sprint(r))
	s.closeOrReset()

	fmt.Fprintf(crashOutput, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", stack)
	if f, ok := crashOutput.(*os.File); ok {
		f.Sync()
	}

	exit(1)
}

// closeOrReset closes the session, falling back to EmergencyReset when Close panics
func (s *Session) closeOrReset() {
	defer func() {
		if recover() != nil {
			EmergencyReset(os.Stdout)
			live.Store(false)
		}
	}()
	s.Close()
}
