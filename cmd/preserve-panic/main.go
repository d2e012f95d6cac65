package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/easycurses/curses"
)

func main() {
	err := curses.Run(func(s *curses.Session) {
		s.SetCursorVisibility(curses.CursorInvisible)
		s.SetEcho(false)
		s.Print("Hello world. Press any key to panic.")
		s.Refresh()
		s.GetInput()
		panic("oh no")
	})

	var pe *curses.PanicError
	switch {
	case errors.As(err, &pe) && pe.HasMessage:
		fmt.Printf("Error Occurred: %s\n", pe.Message)
	case errors.As(err, &pe):
		fmt.Println("There was an error, but no error message.")
	case err != nil:
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
}
