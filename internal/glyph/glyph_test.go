package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coverage(g Glyph) int {
	n := 0
	for _, p := range g.Pix {
		if p > 0 {
			n++
		}
	}
	return n
}

func TestDefaultCacheCoversPrintableASCII(t *testing.T) {
	c := NewDefault()
	assert.Equal(t, 13, c.Height())

	for r := First; r <= Last; r++ {
		g := c.Glyph(r)
		require.Equal(t, 7, g.Width, "rune %q", r)
		require.Equal(t, 13, g.Height, "rune %q", r)
		require.Len(t, g.Pix, g.Width*g.Height)
	}

	assert.Zero(t, coverage(c.Glyph(' ')))
	assert.Positive(t, coverage(c.Glyph('A')))
	assert.NotEqual(t, c.Glyph('A'), c.Glyph('B'))
}

func TestCacheFallback(t *testing.T) {
	c := NewDefault()
	x := c.Glyph('X')

	for _, r := range []rune{'é', '\n', 0x7F, 0x1F, '█'} {
		assert.Equal(t, x, c.Glyph(r), "rune %U", r)
	}
}

func TestGlyphAtOutOfRange(t *testing.T) {
	g := NewDefault().Glyph('A')
	assert.Zero(t, g.At(-1, 0))
	assert.Zero(t, g.At(0, 100))
}

func TestCacheMeasure(t *testing.T) {
	c := NewDefault()
	assert.Equal(t, 0, c.Measure(""))
	assert.Equal(t, 7*5, c.Measure("Score"))
}

func TestCacheWrap(t *testing.T) {
	c := NewDefault()
	lines := c.Wrap("GAME OVER press space", 7*9)
	assert.Equal(t, []string{"GAME OVER", "press", "space"}, lines)
}
