// Package pixel paints a core.Screen onto a core.Renderer: every cell is a
// filled rectangle for its background and text is drawn from a glyph cache,
// one rectangle per horizontal run of glyph pixels.
package pixel

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/glyph"
)

// coverageThreshold is the glyph alpha at which a pixel counts as ink.
const coverageThreshold = 0x80

// Painter implements loop.Presenter over a core.Renderer.
type Painter struct {
	out        core.Renderer
	glyphs     *glyph.Cache
	background core.RGBA
	cellW      int
	cellH      int
}

// NewPainter creates a painter. Cells are sized to the cache's fallback
// glyph, so a monospace font gives a uniform grid.
func NewPainter(out core.Renderer, glyphs *glyph.Cache, background core.RGBA) *Painter {
	return &Painter{
		out:        out,
		glyphs:     glyphs,
		background: background,
		cellW:      glyphs.Glyph(glyph.Fallback).Width,
		cellH:      glyphs.Height(),
	}
}

// CellSize returns the pixel size of one screen cell.
func (p *Painter) CellSize() (w, h int) {
	return p.cellW, p.cellH
}

// PixelSize returns the pixel size needed to show a cols x rows screen.
func (p *Painter) PixelSize(cols, rows int) (w, h int) {
	return cols * p.cellW, rows * p.cellH
}

// Present draws s and presents the frame.
func (p *Painter) Present(s *core.Screen) error {
	p.Paint(s)
	return p.out.Present()
}

// Paint draws s without presenting.
func (p *Painter) Paint(s *core.Screen) {
	p.out.Clear(p.background)
	for y := 0; y < s.Height(); y++ {
		p.paintBackgrounds(s, y)
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			fg := c.FG
			if fg.IsZero() {
				fg = core.ColorText
			}
			p.paintGlyph(x*p.cellW, y*p.cellH, c.Rune, fg)
		}
	}
}

// paintBackgrounds fills runs of same-colored cells in row y with one rect.
func (p *Painter) paintBackgrounds(s *core.Screen, y int) {
	x := 0
	for x < s.Width() {
		bg := s.GetCell(x, y).BG
		start := x
		for x < s.Width() && s.GetCell(x, y).BG == bg {
			x++
		}
		if bg.IsZero() || bg == p.background {
			continue
		}
		p.out.DrawRect(start*p.cellW, y*p.cellH, (x-start)*p.cellW, p.cellH, bg)
	}
}

func (p *Painter) paintGlyph(px, py int, r rune, fg core.RGBA) {
	g := p.glyphs.Glyph(r)
	for gy := 0; gy < g.Height; gy++ {
		gx := 0
		for gx < g.Width {
			if g.At(gx, gy) < coverageThreshold {
				gx++
				continue
			}
			start := gx
			for gx < g.Width && g.At(gx, gy) >= coverageThreshold {
				gx++
			}
			p.out.DrawRect(px+start, py+gy, gx-start, 1, fg)
		}
	}
}
