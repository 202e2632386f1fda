// Package blocks implements the falling-block game: the phase state
// machine (initializing, running, paused, game over) driving the engine,
// and its rendering into a core.Screen.
package blocks

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// GameID is the registry identifier.
const GameID = "blocks"

const gameTitle = "Blocks"

// Phase is the game's state machine position.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the blocks game.
type Game struct {
	cfg        config.BlocksConfig
	palette    config.Palette
	difficulty *config.DifficultyManager
	logger     *log.Logger

	rng        *rand.Rand
	tick       uint64
	roundTicks int // Running ticks since the round began
	phase      Phase

	board   engine.Grid
	falling engine.Tetromino
	next    engine.Tetromino

	score        int
	lines        int
	level        int
	fallTimer    int
	fallInterval int

	redraw bool

	screenW int
	screenH int
}

// Package-level settings applied by the registry factory, set from the CLI
// before the game is created.
var (
	activeConfig = config.DefaultBlocksConfig()
	activeLogger *log.Logger
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.BlocksConfig) {
	activeConfig = cfg
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	activeLogger = l
}

// New creates a game with the given configuration. A nil logger discards.
// An invalid theme falls back to the default palette.
func New(cfg config.BlocksConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		logger.Warn("invalid theme, using defaults", "error", err)
		palette = config.DefaultPalette()
	}
	return &Game{
		cfg:        cfg,
		palette:    palette,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     logger,
	}
}

func init() {
	registry.Register(registry.Info{
		ID:      GameID,
		Title:   gameTitle,
		Summary: "Steer falling tetrominoes and clear full rows",
	}, func() registry.Game {
		return New(activeConfig, activeLogger)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset seeds the game and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.initialize()
}

// Resize updates the layout without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.redraw = true
}

// initialize allocates a fresh board and pieces and enters Running.
func (g *Game) initialize() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0))
	}
	g.board = engine.NewBoard()
	g.falling = engine.Generate(g.rng)
	g.next = engine.Generate(g.rng)
	g.score = 0
	g.lines = 0
	g.level = 0
	g.roundTicks = 0
	g.fallInterval = g.currentFallInterval()
	g.fallTimer = g.fallInterval
	g.setPhase(PhaseRunning)
}

// teardown drops the board and pieces ahead of re-initialization.
func (g *Game) teardown() {
	g.board = engine.Grid{}
	g.falling = engine.Tetromino{}
	g.next = engine.Tetromino{}
}

func (g *Game) setPhase(p Phase) {
	if g.phase != p {
		g.logger.Debug("phase change", "from", g.phase, "to", p, "tick", g.tick)
	}
	g.phase = p
	g.redraw = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.redraw = false

	switch g.phase {
	case PhaseInitializing:
		g.initialize()
	case PhaseRunning:
		g.stepRunning(in)
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.setPhase(PhaseRunning)
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.logger.Info("restart", "previous_score", g.score)
			g.teardown()
			g.setPhase(PhaseInitializing)
		}
	}

	return core.StepResult{State: g.State(), Redraw: g.redraw}
}

// stepRunning applies gravity and at most one move per axis, then clears
// lines and checks for a blocked spawn.
func (g *Game) stepRunning(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.setPhase(PhasePaused)
		return
	}

	g.roundTicks++
	g.updateFallInterval()

	moveDown := in.Has(core.ActionDown)
	g.fallTimer--
	if g.fallTimer <= 0 {
		moveDown = true
		g.fallTimer = g.fallInterval
	}

	if in.Has(core.ActionLeft) {
		g.tryMove(g.falling.Moved(0, -1))
	}
	if in.Has(core.ActionRight) {
		g.tryMove(g.falling.Moved(0, 1))
	}
	if moveDown {
		candidate := g.falling.Moved(1, 0)
		if engine.HasCollision(&g.board, &candidate) {
			g.lock()
		} else {
			g.falling = candidate
			g.redraw = true
		}
	}
	if in.Has(core.ActionRotate) {
		g.tryMove(g.falling.RotateClockwise())
	}

	if cleared := engine.ClearLines(&g.board); cleared > 0 {
		g.score += engine.LineScore(cleared)
		g.lines += cleared
		if lpl := g.cfg.Gameplay.LinesPerLevel; lpl > 0 {
			g.level = g.lines / lpl
		}
		g.updateFallInterval()
		g.redraw = true
		g.logger.Debug("lines cleared", "count", cleared, "score", g.score, "level", g.level)
	}

	if engine.HasCollision(&g.board, &g.falling) {
		g.logger.Info("game over", "score", g.score, "lines", g.lines, "tick", g.tick)
		g.setPhase(PhaseGameOver)
	}
}

// tryMove commits candidate when it fits; otherwise the piece stays put.
func (g *Game) tryMove(candidate engine.Tetromino) {
	if engine.HasCollision(&g.board, &candidate) {
		return
	}
	g.falling = candidate
	g.redraw = true
}

// lock merges the falling piece into the board and promotes the next one.
func (g *Game) lock() {
	engine.Merge(&g.board, &g.falling)
	g.falling = g.next
	g.falling.Row, g.falling.Col = 0, 0
	g.next = engine.Generate(g.rng)
	g.fallTimer = g.fallInterval
	g.redraw = true
}

// updateFallInterval applies the current difficulty. A shorter interval
// also shortens a countdown already in progress.
func (g *Game) updateFallInterval() {
	g.fallInterval = g.currentFallInterval()
	if g.fallTimer > g.fallInterval {
		g.fallTimer = g.fallInterval
	}
}

func (g *Game) currentFallInterval() int {
	return g.difficulty.FallInterval(
		g.cfg.Timing.FallInterval,
		g.cfg.Timing.MinFallInterval,
		config.Progress{Lines: g.lines, Score: g.score, Ticks: g.roundTicks},
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}
