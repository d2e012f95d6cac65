package curses

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a non-character key
type Key uint16

const (
	KeyNone Key = iota

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter; Ctrl+H, Ctrl+I and Ctrl+M arrive as Backspace, Tab and Enter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// keyToName maps Key constants to canonical names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",
}

func init() {
	for i := 0; i < 12; i++ {
		keyToName[KeyF1+Key(i)] = fmt.Sprintf("f%d", i+1)
	}
	for i := 0; i < 26; i++ {
		keyToName[KeyCtrlA+Key(i)] = fmt.Sprintf("ctrl_%c", 'a'+i)
	}
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// fromTcellKey holds the keys whose codes do not fall in a contiguous range.
// The tty parser reports the Ctrl+H, Ctrl+I and Ctrl+M bytes as KeyBackspace,
// KeyTab and KeyEnter, so they resolve to the named key.
var fromTcellKey = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,
}

// translateKey maps a tcell key code; ok is false for codes with no equivalent
func translateKey(k tcell.Key) (Key, bool) {
	if key, ok := fromTcellKey[k]; ok {
		return key, true
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return KeyF1 + Key(k-tcell.KeyF1), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return KeyCtrlA + Key(k-tcell.KeyCtrlA), true
	}
	return KeyNone, false
}

func translateMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
