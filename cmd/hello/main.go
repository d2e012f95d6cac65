package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/easycurses/curses"
)

func main() {
	s, err := curses.Initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	s.SetCursorVisibility(curses.CursorInvisible)
	s.SetEcho(false)

	s.Print("Hello world.")
	s.Refresh()

	// Wait for one key so the message can be read
	s.GetInput()
}
