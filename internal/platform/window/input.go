package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultBindings maps keys to game actions.
var DefaultBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionRotate,
	ebiten.KeyW:          core.ActionRotate,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEscape:     core.ActionPause,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeySpace:      core.ActionRestart,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyEnter:      core.ActionRestart,
	ebiten.KeyQ:          core.ActionQuit,
}

// KeyPoller reports the actions whose keys went down since the last tick.
// Holding a key does not repeat it.
type KeyPoller struct {
	bindings    map[ebiten.Key]core.Action
	justPressed func(ebiten.Key) bool
	frame       core.InputFrame
}

// NewKeyPoller creates a poller over bindings; nil uses DefaultBindings.
func NewKeyPoller(bindings map[ebiten.Key]core.Action) *KeyPoller {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &KeyPoller{
		bindings:    bindings,
		justPressed: inpututil.IsKeyJustPressed,
		frame:       core.NewInputFrame(),
	}
}

// Poll implements loop.InputSource. The returned frame is reused by the
// next call.
func (p *KeyPoller) Poll() core.InputFrame {
	p.frame.Clear()
	for k, a := range p.bindings {
		if p.justPressed(k) {
			p.frame.Set(a)
		}
	}
	return p.frame
}
