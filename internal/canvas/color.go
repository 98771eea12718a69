package canvas

import (
	"strconv"
	"strings"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Hex parses "#RRGGBB" or "RRGGBB". Invalid input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// RGB returns the components as ints, the form gofpdf takes.
func (c Color) RGB() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}
