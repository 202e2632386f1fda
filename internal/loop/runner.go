package loop

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Stepper is the part of a game the loop drives.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// InputSource yields the edge-triggered input gathered since the last poll.
type InputSource interface {
	Poll() core.InputFrame
}

// Presenter shows a rendered screen.
type Presenter interface {
	Present(s *core.Screen) error
}

// Runner drives a Stepper with the cooperative fixed-rate loop.
type Runner struct {
	Game      Stepper
	Input     InputSource
	Output    Presenter // nil renders nothing
	Screen    *core.Screen
	Clock     Clock
	Pacer     *Pacer
	MaxFrames int // 0 runs until quit or cancellation
	Logger    *log.Logger
}

// Stats summarizes a finished run.
type Stats struct {
	Frames  int
	Renders int
	Dropped int
	Final   core.GameState
}

// Run loops until the input asks to quit, MaxFrames is reached, ctx is
// cancelled, or presenting fails.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := r.Clock
	if clock == nil {
		clock = NewSystemClock()
	}
	pacer := r.Pacer
	if pacer == nil {
		pacer = NewPacer(DefaultTickRate)
	}

	var stats Stats
	firstFrame := true
	for {
		if err := ctx.Err(); err != nil {
			stats.Dropped = pacer.Dropped()
			return stats, err
		}
		if r.MaxFrames > 0 && stats.Frames >= r.MaxFrames {
			break
		}

		start := clock.Ticks()

		in := r.Input.Poll()
		if in.Has(core.ActionQuit) {
			logger.Debug("quit requested", "frame", stats.Frames)
			break
		}

		res := r.Game.Step(in)
		stats.Frames++
		stats.Final = res.State

		if r.Output != nil && r.Screen != nil && (res.Redraw || firstFrame) {
			r.Game.Render(r.Screen)
			if err := r.Output.Present(r.Screen); err != nil {
				stats.Dropped = pacer.Dropped()
				return stats, err
			}
			stats.Renders++
			firstFrame = false
		}

		elapsed := clock.Ticks() - start
		dropped := pacer.Dropped()
		delay := pacer.Delay(elapsed)
		if pacer.Dropped() > dropped {
			logger.Debug("frame over budget", "frame", stats.Frames, "elapsed", elapsed, "budget", pacer.Budget())
		}
		clock.Sleep(delay)
	}

	stats.Dropped = pacer.Dropped()
	return stats, nil
}
