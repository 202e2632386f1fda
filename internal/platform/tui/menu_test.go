package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	require.True(t, ok)
	return nm, cmd
}

func TestMenuStartsOnInitialPreset(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	assert.Equal(t, config.DifficultyHard, m.items[m.cursor].Preset)

	m = NewMenuModel(core.DefaultConfig(), "")
	assert.Equal(t, config.DifficultyPreset(""), m.items[m.cursor].Preset)
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)

	m, _ = updateMenu(t, m, runeKey('j'))
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyNormal, m.Selected().Preset)
	assert.False(t, m.IsQuitting())
	assert.Contains(t, m.View(), "Normal")
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")

	m, cmd := updateMenu(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.True(t, m.IsQuitting())
	assert.Nil(t, m.Selected())
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")

	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}
