package curses

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// InputKind distinguishes input categories
type InputKind uint8

const (
	InputCharacter InputKind = iota // Printable character, see Input.Rune
	InputKey                        // Special key, see Input.Key
	InputResize                     // Terminal resized, see Session.Size
)

// Input is one event returned by GetInput
type Input struct {
	Kind InputKind
	Rune rune
	Key  Key
	Mod  Modifier
}

func (in Input) String() string {
	switch in.Kind {
	case InputCharacter:
		return fmt.Sprintf("Character(%q)", in.Rune)
	case InputKey:
		return fmt.Sprintf("Key(%s)", in.Key)
	case InputResize:
		return "Resize"
	}
	return fmt.Sprintf("Input(%d)", in.Kind)
}

// GetInput refreshes the screen, then blocks until a key press or resize
// arrives. Mouse, paste and other events are skipped. With echo on, a
// character is drawn at the cursor before returning. ok is false once the
// session is closed.
func (s *Session) GetInput() (in Input, ok bool) {
	if s.Closed() {
		return Input{}, false
	}
	s.screen.Show()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return Input{}, false
		}

		in, ok = translateEvent(s.screen, ev)
		if !ok {
			continue
		}

		if in.Kind == InputCharacter && s.echo {
			if err := s.PrintRune(in.Rune); err == nil {
				s.screen.Show()
			}
		}
		return in, true
	}
}

// FlushInput discards events already queued
func (s *Session) FlushInput() {
	if s.Closed() {
		return
	}
	for s.screen.HasPendingEvent() {
		s.screen.PollEvent()
	}
}

func translateEvent(screen tcell.Screen, ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		mod := translateMod(ev.Modifiers())
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			if mod&ModCtrl != 0 && unicode.IsLetter(r) && r < unicode.MaxASCII {
				return Input{Kind: InputKey, Key: KeyCtrlA + Key(unicode.ToLower(r)-'a'), Mod: mod}, true
			}
			return Input{Kind: InputCharacter, Rune: r, Mod: mod}, true
		}
		key, ok := translateKey(ev.Key())
		if !ok {
			return Input{}, false
		}
		return Input{Kind: InputKey, Key: key, Mod: mod}, true

	case *tcell.EventResize:
		screen.Sync()
		return Input{Kind: InputResize}, true
	}
	return Input{}, false
}
