// blocks is a falling-block puzzle for the terminal and a desktop window.
//
// Usage:
//
//	blocks list              - List available games
//	blocks play [game]       - Play in the terminal
//	blocks menu              - Pick a difficulty, then play
//	blocks window [game]     - Play in a desktop window
//	blocks sim [game]        - Run a scripted game headless
//	blocks version           - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle for your terminal",
	Long: `Blocks is a falling-block puzzle. Steer the falling piece, complete
rows to clear them, and keep the stack below the top of the board.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Pick a difficulty, then play in the terminal
  window   - Play in a desktop window
  sim      - Replay a scripted input file without a display
  version  - Print the version

Examples:
  blocks play
  blocks play --difficulty hard
  blocks window --scale 3
  blocks sim --script ./configs/demo-script.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the game config, applies the difficulty preset, and
// hands it to the game package so registry factories pick it up.
func loadGameConfig(logger *log.Logger, presetName string) (config.BlocksConfig, error) {
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return config.BlocksConfig{}, err
	}
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return config.BlocksConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	blocks.SetConfig(cfg)
	blocks.SetLogger(logger)
	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset,
		"fall_interval", cfg.Timing.FallInterval)
	return cfg, nil
}

// runtimeConfig builds the runtime config shared by every front end.
// A non-positive size keeps the default 80x24. Seed stays zero unless
// --seed was given; interactive front ends then pick a time-based one.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// terminalConfig sizes the runtime config to stdout, falling back to the
// defaults when stdout is not a terminal.
func terminalConfig() core.RuntimeConfig {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return runtimeConfig(0, 0)
	}
	return runtimeConfig(w, h)
}

// createGame builds the registered game id, pointing at 'blocks list'
// when nothing is registered under it.
func createGame(id string) (registry.Game, error) {
	game, err := registry.Create(id)
	if errors.Is(err, registry.ErrUnknownGame) {
		return nil, fmt.Errorf("%w (run 'blocks list' to see available games)", err)
	}
	return game, err
}

// gameArg returns the requested game ID, defaulting to blocks.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return blocks.GameID
}
