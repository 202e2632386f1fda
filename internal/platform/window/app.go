package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/glyph"
	"github.com/vovakirdan/tui-blocks/internal/loop"
	"github.com/vovakirdan/tui-blocks/internal/platform/pixel"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// App adapts a registry.Game to ebiten.Game. Ebitengine calls Update at
// the tick rate and Draw once per display frame; the screen is repainted
// only after a tick asked for a redraw.
type App struct {
	game     registry.Game
	input    loop.InputSource
	screen   *core.Screen
	renderer *Renderer
	painter  *pixel.Painter
	logger   *log.Logger

	state  core.GameState
	frames int
	dirty  bool
}

// NewApp creates an app showing a cols x rows cell screen.
func NewApp(game registry.Game, cfg core.RuntimeConfig, background core.RGBA, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Renderer{}
	return &App{
		game:     game,
		input:    NewKeyPoller(nil),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: r,
		painter:  pixel.NewPainter(r, glyph.NewDefault(), background),
		logger:   logger,
		dirty:    true,
	}
}

// Update runs one simulation tick.
func (a *App) Update() error {
	in := a.input.Poll()
	if in.Has(core.ActionQuit) {
		a.logger.Info("quit", "score", a.state.Score, "frames", a.frames)
		return ebiten.Termination
	}

	res := a.game.Step(in)
	a.state = res.State
	a.frames++
	if res.Redraw {
		a.dirty = true
	}
	return nil
}

// Draw repaints the window when the last tick changed something.
func (a *App) Draw(screen *ebiten.Image) {
	if !a.dirty {
		return
	}
	a.renderer.target = screen
	a.game.Render(a.screen)
	a.painter.Paint(a.screen)
	a.dirty = false
}

// Layout returns the fixed logical size of the cell screen.
func (a *App) Layout(_, _ int) (int, int) {
	return a.painter.PixelSize(a.screen.Width(), a.screen.Height())
}

// Run opens a window and plays game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, background core.RGBA, scale int, logger *log.Logger) error {
	if scale < 1 {
		scale = 1
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = loop.DefaultTickRate
	}
	cfg = cfg.Seeded(time.Now())
	game.Reset(cfg)

	app := NewApp(game, cfg, background, logger)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetScreenClearedEveryFrame(false)

	app.logger.Info("window opened", "game", game.ID(), "size", fmt.Sprintf("%dx%d", w*scale, h*scale), "tps", cfg.TickRate, "seed", cfg.Seed)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
