package pixel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/glyph"
)

type rect struct {
	x, y, w, h int
	c          core.RGBA
}

// recorder is a core.Renderer that remembers every call.
type recorder struct {
	cleared  []core.RGBA
	rects    []rect
	presents int
	err      error
}

func (r *recorder) Clear(c core.RGBA) {
	r.cleared = append(r.cleared, c)
	r.rects = nil
}

func (r *recorder) DrawRect(x, y, w, h int, c core.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recorder) Present() error {
	r.presents++
	return r.err
}

func TestPainterCellSize(t *testing.T) {
	p := NewPainter(&recorder{}, glyph.NewDefault(), core.ColorBackground)

	w, h := p.CellSize()
	assert.Equal(t, 7, w)
	assert.Equal(t, 13, h)

	pw, ph := p.PixelSize(10, 2)
	assert.Equal(t, 70, pw)
	assert.Equal(t, 26, ph)
}

func TestPainterBlankScreen(t *testing.T) {
	rec := &recorder{}
	p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)

	require.NoError(t, p.Present(core.NewScreen(5, 5)))

	assert.Equal(t, []core.RGBA{core.ColorBackground}, rec.cleared)
	assert.Empty(t, rec.rects)
	assert.Equal(t, 1, rec.presents)
}

func TestPainterMergesBackgroundRuns(t *testing.T) {
	rec := &recorder{}
	p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)
	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(1, 1, 4, 1), core.ColorBoard)

	p.Paint(s)

	require.Len(t, rec.rects, 1)
	assert.Equal(t, rect{7, 13, 28, 13, core.ColorBoard}, rec.rects[0])
}

func TestPainterSkipsBackgroundColoredCells(t *testing.T) {
	rec := &recorder{}
	p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)
	s := core.NewScreen(3, 1)
	s.FillRect(core.NewRect(0, 0, 3, 1), core.ColorBackground)

	p.Paint(s)

	assert.Empty(t, rec.rects)
}

func TestPainterDrawsGlyphInsideCell(t *testing.T) {
	rec := &recorder{}
	p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)
	s := core.NewScreen(3, 2)
	s.DrawText(2, 1, "A", core.ColorAlert)

	p.Paint(s)

	require.NotEmpty(t, rec.rects)
	for _, r := range rec.rects {
		assert.Equal(t, core.ColorAlert, r.c)
		assert.Equal(t, 1, r.h)
		assert.GreaterOrEqual(t, r.x, 14)
		assert.LessOrEqual(t, r.x+r.w, 21)
		assert.GreaterOrEqual(t, r.y, 13)
		assert.Less(t, r.y, 26)
	}
}

func TestPainterUnknownRuneUsesFallback(t *testing.T) {
	draw := func(r rune) []rect {
		rec := &recorder{}
		p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)
		s := core.NewScreen(1, 1)
		s.SetCell(0, 0, core.Cell{Rune: r, FG: core.ColorText})
		p.Paint(s)
		return rec.rects
	}

	assert.Equal(t, draw(glyph.Fallback), draw('é'))
}

func TestPainterPresentError(t *testing.T) {
	rec := &recorder{err: errors.New("closed")}
	p := NewPainter(rec, glyph.NewDefault(), core.ColorBackground)

	assert.Error(t, p.Present(core.NewScreen(1, 1)))
}
