package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPacerBudget(t *testing.T) {
	assert.Equal(t, time.Second/60, NewPacer(60).Budget())
	assert.Equal(t, 100*time.Millisecond, NewPacer(10).Budget())
	assert.Equal(t, time.Second/DefaultTickRate, NewPacer(0).Budget())
	assert.Equal(t, time.Second/DefaultTickRate, NewPacer(-5).Budget())
}

func TestPacerDelay(t *testing.T) {
	p := NewPacer(10) // 100ms budget

	assert.Equal(t, 100*time.Millisecond, p.Delay(0))
	assert.Equal(t, 40*time.Millisecond, p.Delay(60*time.Millisecond))
	assert.Equal(t, time.Duration(0), p.Delay(100*time.Millisecond))
	assert.Equal(t, 0, p.Dropped(), "exactly on budget is not dropped")
}

func TestPacerClampsOverrun(t *testing.T) {
	p := NewPacer(10)

	assert.Equal(t, time.Duration(0), p.Delay(150*time.Millisecond))
	assert.Equal(t, time.Duration(0), p.Delay(time.Hour))
	assert.Equal(t, 2, p.Dropped())
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	assert.Equal(t, time.Duration(0), c.Ticks())

	c.Advance(5 * time.Millisecond)
	c.Sleep(10 * time.Millisecond)
	c.Sleep(-time.Second)
	assert.Equal(t, 15*time.Millisecond, c.Ticks())
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Ticks()
	c.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, c.Ticks()-a, time.Millisecond)
}
