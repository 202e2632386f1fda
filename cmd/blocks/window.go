package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/window"
)

var (
	flagScale int
	flagCols  int
	flagRows  int
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. The window shows the same
cell layout as the terminal, drawn with a built-in bitmap font.

Examples:
  blocks window
  blocks window --scale 3 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
	windowCmd.Flags().IntVar(&flagCols, "cols", 48, "Screen width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 24, "Screen height in cells")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadGameConfig(logger, flagDifficulty)
	if err != nil {
		return err
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}

	gameID := gameArg(args)
	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	if err := window.Run(game, runtimeConfig(flagCols, flagRows), palette.Background, flagScale, logger); err != nil {
		logger.Error("window failed", "error", err)
		return err
	}
	return nil
}
