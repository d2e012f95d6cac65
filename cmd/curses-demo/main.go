package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/easycurses/config"
	"github.com/lixenwraith/easycurses/curses"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: $"+config.EnvPath+")")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger, closer, err := cfg.NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	keys, err := curses.PreservePanicMessage(run, curses.WithConfig(cfg), curses.WithLogger(logger))

	var pe *curses.PanicError
	switch {
	case errors.As(err, &pe):
		fmt.Fprintf(os.Stderr, "demo crashed: %s\n", pe.Error())
		os.Stderr.Write(pe.Stack)
		closer.Close()
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
	fmt.Printf("%d keys read\n", keys)
}

// run draws the palette and echoes keys until q or Escape. Ctrl+P panics on purpose.
func run(s *curses.Session) int {
	drawPalette(s)

	keys := 0
	for {
		in, ok := s.GetInput()
		if !ok {
			return keys
		}

		switch {
		case in.Kind == curses.InputResize:
			drawPalette(s)
			continue
		case in.Kind == curses.InputKey && in.Key == curses.KeyEscape,
			in.Kind == curses.InputCharacter && in.Rune == 'q':
			return keys
		case in.Kind == curses.InputKey && in.Key == curses.KeyCtrlP:
			panic(fmt.Sprintf("panic requested after %d keys", keys))
		case in.Kind == curses.InputCharacter && in.Rune == 'b':
			s.Beep()
		}

		keys++
		rows, _ := s.Size()
		if rows < 12 {
			continue
		}
		s.SetPairID(curses.DefaultPair)
		s.MoveRC(rows-1, 0)
		s.Printf("last input: %-30s", in.String())
		s.Refresh()
	}
}

// drawPalette renders every foreground/background combination the pair budget allows
func drawPalette(s *curses.Session) {
	s.Clear()
	s.SetBold(true)
	s.Print("easycurses demo: q/Esc quit, b bell, Ctrl+P panic\n\n")
	s.SetBold(false)

	for bg := curses.ColorBlack; bg <= curses.ColorWhite; bg++ {
		for fg := curses.ColorBlack; fg <= curses.ColorWhite; fg++ {
			if err := s.SetColorPair(curses.ColorPair{Fg: fg, Bg: bg}); err != nil {
				s.SetPairID(curses.DefaultPair)
				s.Print(" -- ")
				continue
			}
			s.Print(" Ab ")
		}
		s.SetPairID(curses.DefaultPair)
		s.Print("\n")
	}
	s.Refresh()
}
