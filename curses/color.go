package curses

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/easycurses/config"
)

// Color is one of the 8 base curses colors, numbered as COLOR_BLACK..COLOR_WHITE
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	colorCount
)

func (c Color) valid() bool {
	return c < colorCount
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return config.ColorNames[c]
}

// tcell maps to the terminal's own palette entry so user themes apply
func (c Color) tcell() tcell.Color {
	return tcell.PaletteColor(int(c))
}

// ParseColor accepts a base color name or #rrggbb, which snaps to the nearest base color
func ParseColor(s string) (Color, error) {
	idx, err := config.ColorIndex(s)
	if err != nil {
		return 0, fmt.Errorf("curses: %v: %w", err, ErrInvalidColor)
	}
	return Color(idx), nil
}

// ColorPair is a foreground/background combination
type ColorPair struct {
	Fg Color
	Bg Color
}

func (p ColorPair) validate() error {
	if !p.Fg.valid() {
		return fmt.Errorf("curses: foreground %d: %w", p.Fg, ErrInvalidColor)
	}
	if !p.Bg.valid() {
		return fmt.Errorf("curses: background %d: %w", p.Bg, ErrInvalidColor)
	}
	return nil
}

func (p ColorPair) String() string {
	return p.Fg.String() + "/" + p.Bg.String()
}

// PairID identifies a defined color pair. 0 is the terminal default pair.
type PairID int

// DefaultPair draws with the terminal's default colors
const DefaultPair PairID = 0

// pairCache assigns pair ids lazily, never more than max of them
type pairCache struct {
	ids   map[ColorPair]PairID
	pairs []ColorPair // pairs[id-1]
	max   int
}

func newPairCache(max int) *pairCache {
	return &pairCache{
		ids: make(map[ColorPair]PairID, max),
		max: max,
	}
}

// lookup returns the id for p, allocating the next slot on a miss
func (c *pairCache) lookup(p ColorPair) (id PairID, allocated bool, err error) {
	if id, ok := c.ids[p]; ok {
		return id, false, nil
	}
	if len(c.pairs) >= c.max {
		return 0, false, fmt.Errorf("curses: pair %s with %d slots used: %w", p, c.max, ErrPairSlotsExhausted)
	}
	c.pairs = append(c.pairs, p)
	id = PairID(len(c.pairs))
	c.ids[p] = id
	return id, true, nil
}

func (c *pairCache) pair(id PairID) (ColorPair, bool) {
	if id <= 0 || int(id) > len(c.pairs) {
		return ColorPair{}, false
	}
	return c.pairs[id-1], true
}

func (c *pairCache) len() int {
	return len(c.pairs)
}

// PairFor returns the id of p, defining the pair on first use
func (s *Session) PairFor(p ColorPair) (PairID, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	id, allocated, err := s.pairs.lookup(p)
	if err != nil {
		return 0, err
	}
	if allocated {
		s.logger.Debug("color pair defined", "pair", p.String(), "id", int(id))
	}
	return id, nil
}

// SetColorPair makes p the pair used by subsequent prints
func (s *Session) SetColorPair(p ColorPair) error {
	id, err := s.PairFor(p)
	if err != nil {
		return err
	}
	s.pair = id
	return nil
}

// SetPairID switches to an already defined pair, or DefaultPair
func (s *Session) SetPairID(id PairID) error {
	if id != DefaultPair {
		if _, ok := s.pairs.pair(id); !ok {
			return fmt.Errorf("curses: pair id %d: %w", id, ErrInvalidMode)
		}
	}
	s.pair = id
	return nil
}

// ColorPairs returns how many pairs have been defined
func (s *Session) ColorPairs() int {
	return s.pairs.len()
}
