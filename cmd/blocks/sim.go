package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/loop"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagScript string
	flagTicks  int
	flagShow   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a scripted game without a display",
	Long: `Replay a YAML input script against the game on a simulated clock
and print a YAML report of the final state. Without --script the game runs
with no input until --ticks is reached.

Script format:
  seed: 42
  ticks: 600
  inputs:
    - tick: 0
      actions: [left, left]
    - tick: 12
      actions: [rotate]

Actions: rotate, down, left, right, pause, restart, quit.

Examples:
  blocks sim --ticks 3600 --seed 7
  blocks sim --script ./configs/demo-script.yaml --show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to an input script YAML")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Ticks to run when the script does not set them")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final screen after the report")
}

// simReport is the YAML summary printed by sim.
type simReport struct {
	Game     string   `yaml:"game"`
	Seed     int64    `yaml:"seed"`
	Frames   int      `yaml:"frames"`
	Renders  int      `yaml:"renders"`
	Dropped  int      `yaml:"dropped"`
	Score    int      `yaml:"score"`
	GameOver bool     `yaml:"game_over"`
	Paused   bool     `yaml:"paused"`
	Phase    string   `yaml:"phase,omitempty"`
	Lines    int      `yaml:"lines,omitempty"`
	Level    int      `yaml:"level,omitempty"`
	Board    []string `yaml:"board,omitempty"`
}

// framePresenter keeps the most recent frame as plain text.
type framePresenter struct {
	last string
}

func (p *framePresenter) Present(s *core.Screen) error {
	p.last = s.String()
	return nil
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	if _, err := loadGameConfig(logger, flagDifficulty); err != nil {
		return err
	}

	script := loop.Script{Seed: flagSeed, Ticks: flagTicks}
	if flagScript != "" {
		script, err = loop.LoadScript(flagScript)
		if err != nil {
			return err
		}
		if script.Ticks == 0 {
			script.Ticks = flagTicks
		}
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	gameID := gameArg(args)
	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, frame, err := simulate(ctx, game, script, runtimeConfig(0, 0), logger)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if flagShow {
		fmt.Fprintln(cmd.OutOrStdout(), frame)
	}
	return nil
}

// simulate runs game against script on a manual clock and returns the
// report and the last rendered frame.
func simulate(ctx context.Context, game registry.Game, script loop.Script, cfg core.RuntimeConfig, logger *log.Logger) (simReport, string, error) {
	cfg.Seed = script.Seed
	game.Reset(cfg)

	out := &framePresenter{}
	runner := &loop.Runner{
		Game:   game,
		Input:  loop.NewScriptSource(script),
		Output: out,
		Screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		Clock:  &loop.ManualClock{},
		Pacer:  loop.NewPacer(cfg.TickRate),
		Logger: logger,
	}

	logger.Info("simulation started", "game", game.ID(), "seed", script.Seed, "ticks", script.Ticks)
	stats, err := runner.Run(ctx)
	if err != nil {
		return simReport{}, "", fmt.Errorf("simulate %s: %w", game.ID(), err)
	}
	logger.Info("simulation finished", "frames", stats.Frames, "score", stats.Final.Score)

	report := simReport{
		Game:     game.ID(),
		Seed:     script.Seed,
		Frames:   stats.Frames,
		Renders:  stats.Renders,
		Dropped:  stats.Dropped,
		Score:    stats.Final.Score,
		GameOver: stats.Final.GameOver,
		Paused:   stats.Final.Paused,
	}
	if g, ok := game.(*blocks.Game); ok {
		snap := g.Snapshot()
		report.Phase = snap.Phase.String()
		report.Lines = snap.Lines
		report.Level = snap.Level
		report.Board = snap.Board
	}
	return report, out.last, nil
}
