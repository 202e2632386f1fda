package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// MenuItem is a selectable difficulty.
type MenuItem struct {
	Preset      config.DifficultyPreset
	Title       string
	Description string
}

// DefaultMenuItems lists the difficulty choices in display order.
// The empty preset keeps whatever the config file says.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{config.DifficultyEasy, "Easy", "slow start, speeds up with cleared lines"},
		{config.DifficultyNormal, "Normal", "starts at 30% speed-up"},
		{config.DifficultyHard, "Hard", "starts at 70% speed-up"},
		{config.DifficultyFixed, "Fixed", "never speeds up"},
		{"", "Config", "use the loaded config as is"},
	}
}

// menuKeyMap defines the key bindings for the menu.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorText.Hex())).
			Background(lipgloss.Color(core.ColorBoard.Hex())).
			Padding(0, 2)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorAlert.Hex())).Bold(true)
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorFrame.Hex()))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     menuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem // Set when user selects an item
}

// NewMenuModel creates a new menu model with the cursor on initial.
func NewMenuModel(cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	items := DefaultMenuItems()
	cursor := 0
	for i, it := range items {
		if it.Preset == initial {
			cursor = i
			break
		}
	}
	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   defaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("B L O C K S"),
		"",
		"Select a difficulty",
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render("> "+item.Title)+"  "+menuDimStyle.Render(item.Description))
			continue
		}
		lines = append(lines, "  "+item.Title)
	}
	lines = append(lines, "", m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.Preset = m.Selected().Preset
	return result, nil
}
