package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play in the terminal",
	Long: `Start with a difficulty picker. After a game is quit, you return to
the picker to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  blocks menu
  blocks menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	initial, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, initial)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}
		initial = result.Preset

		if _, err := loadGameConfig(logger, string(result.Preset)); err != nil {
			return err
		}
		game, err := createGame(blocks.GameID)
		if err != nil {
			return err
		}
		logger.Info("menu selection", "difficulty", result.Preset)
		if err := tui.Run(game, cfg, logger); err != nil {
			logger.Error("terminal ui failed", "error", err)
			return fmt.Errorf("run %s: %w", blocks.GameID, err)
		}
	}
}
