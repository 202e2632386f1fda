package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/loop"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// resizer is implemented by games that react to screen size changes.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	pacer      *loop.Pacer
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	frame      string // Last rendered screen
	dirty      bool   // Screen must be re-rendered before the next View
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Seeded(time.Now())
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		renderer:   NewScreenRenderer(nil),
		pacer:      loop.NewPacer(cfg.TickRate),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		dirty:      true,
	}
}

func gameHeight(h int) int {
	return core.Max(h-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.pacer.Budget())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the key's action until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "dropped_frames", m.pacer.Dropped())
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}
	m.dirty = true
	return m, nil
}

// handleTick steps the simulation once and schedules the next tick for
// the remainder of the frame budget.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Redraw || m.dirty {
		m.game.Render(m.screen)
		m.frame = m.renderer.Render(m.screen)
		m.dirty = false
	}

	elapsed := time.Since(start)
	dropped := m.pacer.Dropped()
	delay := m.pacer.Delay(elapsed)
	if m.pacer.Dropped() > dropped {
		m.logger.Debug("frame over budget", "elapsed", elapsed, "budget", m.pacer.Budget())
	}
	return m, tickCmd(delay)
}

// saveScreenshot writes the current screen as plain text to
// ~/.blocks/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == "" || m.dirty {
		m.game.Render(m.screen)
		m.frame = m.renderer.Render(m.screen)
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
