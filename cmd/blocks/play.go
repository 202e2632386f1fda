package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to blocks.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Esc/P            - Pause
  Space/R/Enter    - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Without --difficulty the fall interval stays fixed for the whole game,
unless the config file enables progression.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Logs are discarded unless --log-file is set, so they never draw over
the game.

Examples:
  blocks play
  blocks play --difficulty hard
  blocks play --config ./my-blocks.yaml --log-file blocks.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	if _, err := loadGameConfig(logger, flagDifficulty); err != nil {
		return err
	}

	gameID := gameArg(args)
	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, terminalConfig(), logger); err != nil {
		logger.Error("terminal ui failed", "error", err)
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
