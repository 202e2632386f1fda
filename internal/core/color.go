package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit-per-channel color with alpha.
// The zero value is fully transparent black and means "unset" for screen cells.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 0xFF}
}

// IsZero reports whether the color is unset.
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}

// Hex returns the color as "#rrggbb" (alpha dropped).
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color. The leading
// '#' is optional.
func ParseHex(s string) (RGBA, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	if len(hex) != 4 && len(hex) != 7 {
		return RGBA{}, fmt.Errorf("color %q: expected 3 or 6 hex digits", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Opaque(r, g, b), nil
}

// Predefined colors for the playfield chrome.
var (
	ColorBackground = Opaque(0x00, 0x00, 0x00)
	ColorBoard      = Opaque(0x55, 0x55, 0x55)
	ColorPreview    = Opaque(0x77, 0x77, 0x77)
	ColorText       = Opaque(0xEE, 0xEE, 0xEE)
	ColorFrame      = Opaque(0xAA, 0xAA, 0xAA)
	ColorAlert      = Opaque(0xFF, 0x55, 0x55)
)
