// Package glyph pre-renders the printable ASCII range of a bitmap font so
// pixel front ends can draw text as rectangles, and wraps text to a width.
package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range held by a Cache.
const (
	First    rune = 0x20
	Last     rune = 0x7E
	Fallback rune = 'X'
)

// Glyph is a rendered character: an alpha mask of Width x Height, row-major.
type Glyph struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the coverage of pixel (x, y); out-of-range pixels are 0.
func (g Glyph) At(x, y int) uint8 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Cache maps ASCII 0x20-0x7E to pre-rendered glyphs.
type Cache struct {
	glyphs [Last - First + 1]Glyph
	have   [Last - First + 1]bool
	height int
}

// New renders every printable ASCII rune of face once.
// The fallback glyph must exist in the face.
func New(face font.Face) (*Cache, error) {
	m := face.Metrics()
	c := &Cache{height: m.Height.Ceil()}
	ascent := m.Ascent.Ceil()

	for r := First; r <= Last; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		c.glyphs[r-First] = render(face, r, adv.Ceil(), c.height, ascent)
		c.have[r-First] = true
	}

	if !c.have[Fallback-First] {
		return nil, fmt.Errorf("glyph: font has no fallback glyph %q", Fallback)
	}
	return c, nil
}

// NewDefault returns a cache over the built-in 7x13 bitmap font.
func NewDefault() *Cache {
	c, err := New(basicfont.Face7x13)
	if err != nil {
		// basicfont always covers printable ASCII.
		panic(err)
	}
	return c
}

func render(face font.Face, r rune, w, h, ascent int) Glyph {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(r))
	return Glyph{Width: w, Height: h, Pix: dst.Pix}
}

// Glyph returns the glyph for r, or the fallback glyph when r is not cached.
func (c *Cache) Glyph(r rune) Glyph {
	if r >= First && r <= Last && c.have[r-First] {
		return c.glyphs[r-First]
	}
	return c.glyphs[Fallback-First]
}

// Height returns the line height in pixels.
func (c *Cache) Height() int {
	return c.height
}

// Measure returns the width of s in pixels.
func (c *Cache) Measure(s string) int {
	w := 0
	for _, r := range s {
		w += c.Glyph(r).Width
	}
	return w
}

// Wrap splits text into lines no wider than maxWidth pixels.
func (c *Cache) Wrap(text string, maxWidth int) []string {
	return WrapFunc(text, maxWidth, func(r rune) int { return c.Glyph(r).Width })
}
