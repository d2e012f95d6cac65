// Package curses is a small, safe layer over tcell for curses-style programs.
//
// A program holds exactly one *Session while the terminal is in curses mode:
//
//	s, err := curses.Initialize()
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
// Close restores the terminal on every exit path that runs deferred calls,
// panics included. PreservePanicMessage goes one step further and hands the
// panic message back after the terminal is restored, so it is not wiped by
// the screen teardown.
//
// Sessions are not safe for concurrent use. os.Exit while a session is live
// skips Close and leaves the terminal in raw mode.
package curses
