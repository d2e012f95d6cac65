package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorNames lists the 8 base curses colors in palette order
var ColorNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// basePalette holds the xterm rendition of the base colors, same order as ColorNames
var basePalette = [8]string{
	"#000000",
	"#800000",
	"#008000",
	"#808000",
	"#000080",
	"#800080",
	"#008080",
	"#c0c0c0",
}

var baseColors [8]colorful.Color

func init() {
	for i, h := range basePalette {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("config: bad palette entry %s: %v", h, err))
		}
		baseColors[i] = c
	}
}

// ColorIndex resolves a color name or #rrggbb value to a base palette index.
// Hex values snap to the perceptually nearest base color (CIE Lab distance).
func ColorIndex(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}

	for i, name := range ColorNames {
		if s == name {
			return i, nil
		}
	}

	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("unknown color %q", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return nearest(c), nil
}

func nearest(c colorful.Color) int {
	best := 0
	bestDist := c.DistanceLab(baseColors[0])
	for i := 1; i < len(baseColors); i++ {
		if d := c.DistanceLab(baseColors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
