// Package loop runs the single-threaded frame loop: poll input, step the
// game, render when something changed, then wait out the rest of the frame.
package loop

import "time"

// DefaultTickRate is used when a non-positive rate is requested.
const DefaultTickRate = 60

// Pacer spaces frames at a fixed rate. Each frame gets a budget of
// 1s/rate; the delay after a frame is the budget minus the time the frame
// took, clamped at zero. A clamped frame counts as dropped.
type Pacer struct {
	budget  time.Duration
	dropped int
}

// NewPacer creates a pacer for the given frames per second.
func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Pacer{budget: time.Second / time.Duration(tickRate)}
}

// Budget returns the target frame duration.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Delay returns how long to wait after a frame that took elapsed.
func (p *Pacer) Delay(elapsed time.Duration) time.Duration {
	remaining := p.budget - elapsed
	if remaining < 0 {
		p.dropped++
		return 0
	}
	return remaining
}

// Dropped returns the number of frames that overran their budget.
func (p *Pacer) Dropped() int {
	return p.dropped
}

// Clock is a monotonic tick counter plus the ability to wait.
type Clock interface {
	// Ticks returns the time elapsed since the clock started.
	Ticks() time.Duration
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks returns the monotonic time since NewSystemClock.
func (c *SystemClock) Ticks() time.Duration {
	return time.Since(c.start)
}

// Sleep blocks for d.
func (c *SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualClock only moves when told to. Sleep advances it instantly,
// which makes headless runs finish as fast as the simulation allows.
type ManualClock struct {
	now time.Duration
}

// Ticks returns the current manual time.
func (c *ManualClock) Ticks() time.Duration {
	return c.now
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Advance moves the clock forward, simulating work.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
