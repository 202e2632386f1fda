// Package tui provides the Bubble Tea front end for the game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends the next tick after delay.
// A zero delay ticks immediately: the previous frame overran its budget.
func tickCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
