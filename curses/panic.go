package curses

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a panic recovered by PreservePanicMessage
type PanicError struct {
	// Value is the raw argument passed to panic
	Value any
	// Message is the panic text; meaningful only when HasMessage is set
	Message    string
	HasMessage bool
	Stack      []byte
}

func newPanicError(v any) *PanicError {
	e := &PanicError{Value: v, Stack: debug.Stack()}
	switch v := v.(type) {
	case string:
		e.Message, e.HasMessage = v, true
	case error:
		e.Message, e.HasMessage = v.Error(), true
	case fmt.Stringer:
		e.Message, e.HasMessage = v.String(), true
	}
	return e
}

func (e *PanicError) Error() string {
	if e.HasMessage {
		return "curses: panic: " + e.Message
	}
	return fmt.Sprintf("curses: panic with no message (%T)", e.Value)
}

// Unwrap exposes a panic value that was itself an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// PreservePanicMessage initializes a session, runs fn with it and closes it.
// A panic in fn is recovered after the session is closed and returned as a
// *PanicError, so its message lands on a restored terminal instead of being
// erased by the teardown. Initialization errors are returned unchanged.
//
// A panic on another goroutine still kills the process; use Session.Go.
func PreservePanicMessage[R any](fn func(*Session) R, opts ...Option) (result R, err error) {
	s, err := Initialize(opts...)
	if err != nil {
		return result, err
	}

	// Deferred in this order so Close runs before recover
	defer func() {
		if r := recover(); r != nil {
			pe := newPanicError(r)
			s.logger.Error("recovered panic", "error", pe.Error())
			var zero R
			result, err = zero, pe
		}
	}()
	defer s.Close()

	return fn(s), nil
}

// Run is PreservePanicMessage for logic without a result
func Run(fn func(*Session), opts ...Option) error {
	_, err := PreservePanicMessage(func(s *Session) struct{} {
		fn(s)
		return struct{}{}
	}, opts...)
	return err
}
