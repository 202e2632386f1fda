package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/loop"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newSimGame() *blocks.Game {
	return blocks.New(config.DefaultBlocksConfig(), nil)
}

func TestSimulateIsDeterministic(t *testing.T) {
	script, err := loop.ParseScript([]byte(`
seed: 99
ticks: 900
inputs:
  - tick: 3
    actions: [left, left]
  - tick: 40
    actions: [rotate]
  - tick: 41
    actions: [right]
  - tick: 90
    actions: [down]
`))
	require.NoError(t, err)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

	r1, f1, err := simulate(context.Background(), newSimGame(), script, cfg, quietLogger())
	require.NoError(t, err)
	r2, f2, err := simulate(context.Background(), newSimGame(), script, cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, f1, f2)
	assert.Equal(t, 900, r1.Frames)
	assert.Equal(t, int64(99), r1.Seed)
	assert.Equal(t, "blocks", r1.Game)
	assert.Len(t, r1.Board, 20)
	assert.Contains(t, f1, "NEXT")
	assert.Zero(t, r1.Dropped, "manual clock never overruns")
}

func TestSimulateRunsToGameOver(t *testing.T) {
	script := loop.Script{Seed: 1, Ticks: 60 * 60 * 10}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

	report, frame, err := simulate(context.Background(), newSimGame(), script, cfg, quietLogger())
	require.NoError(t, err)

	assert.True(t, report.GameOver, "an unattended stack reaches the top")
	assert.Equal(t, "game_over", report.Phase)
	assert.Contains(t, frame, "GAME OVER")
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := simulate(ctx, newSimGame(), loop.Script{Ticks: 10}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
