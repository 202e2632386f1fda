// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Renderer implements core.Renderer on an ebiten image. The target is set
// at the start of each Draw call.
type Renderer struct {
	target *ebiten.Image
}

func toColor(c core.RGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Clear fills the whole target.
func (r *Renderer) Clear(c core.RGBA) {
	if r.target == nil {
		return
	}
	r.target.Fill(toColor(c))
}

// DrawRect fills a pixel rectangle.
func (r *Renderer) DrawRect(x, y, w, h int, c core.RGBA) {
	if r.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(w), float32(h), toColor(c), false)
}

// Present is a no-op: Ebitengine shows the frame when Draw returns.
func (r *Renderer) Present() error {
	return nil
}
