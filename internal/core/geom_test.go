package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max))
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 5, Min(5, 10))
	assert.Equal(t, 5, Min(10, 5))
	assert.Equal(t, 10, Max(5, 10))
	assert.Equal(t, 10, Max(10, 5))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	assert.NoError(t, err)
	assert.Equal(t, Opaque(0xff, 0x80, 0x00), c)
	assert.Equal(t, "#ff8000", c.Hex())

	c, err = ParseHex("0a0b0c")
	assert.NoError(t, err)
	assert.Equal(t, Opaque(0x0a, 0x0b, 0x0c), c)

	c, err = ParseHex("#f80")
	assert.NoError(t, err)
	assert.Equal(t, Opaque(0xff, 0x88, 0x00), c)

	for _, bad := range []string{"", "#", "#12345", "#ff8000ff", "zzzzzz", "#ggg"} {
		_, err = ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.True(t, f.Empty())

	f.Set(ActionLeft)
	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionRight))
	assert.False(t, f.Empty())

	clone := f.Clone()
	f.Clear()
	assert.True(t, f.Empty())
	assert.True(t, clone.Has(ActionLeft), "clone must not share storage")

	var zero InputFrame
	assert.False(t, zero.Has(ActionDown))
	zero.Set(ActionDown)
	assert.True(t, zero.Has(ActionDown))
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionRotate, ActionDown, ActionLeft, ActionRight, ActionPause, ActionRestart, ActionQuit} {
		got, ok := ParseAction(lower(a.String()))
		assert.True(t, ok, a.String())
		assert.Equal(t, a, got)
	}

	_, ok := ParseAction("jump")
	assert.False(t, ok)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestRuntimeConfigSeeded(t *testing.T) {
	now := time.Unix(1700000000, 123)

	cfg := DefaultConfig().Seeded(now)
	assert.Equal(t, now.UnixNano(), cfg.Seed)
	assert.Equal(t, 80, cfg.ScreenW)

	fixed := RuntimeConfig{Seed: 7}.Seeded(now)
	assert.Equal(t, int64(7), fixed.Seed)

	later := DefaultConfig().Seeded(now.Add(time.Millisecond))
	assert.NotEqual(t, cfg.Seed, later.Seed)
}
