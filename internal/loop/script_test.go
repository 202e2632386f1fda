package loop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const sampleScript = `
seed: 7
ticks: 5
inputs:
  - tick: 3
    actions: [rotate]
  - tick: 0
    actions: [left, down]
  - tick: 3
    actions: [right]
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, 5, s.Ticks)
	assert.Len(t, s.Inputs, 3)
}

func TestParseScriptErrors(t *testing.T) {
	tests := map[string]string{
		"unknown action": "inputs:\n  - tick: 1\n    actions: [jump]\n",
		"negative tick":  "inputs:\n  - tick: -1\n    actions: [left]\n",
		"negative ticks": "ticks: -3\n",
		"bad yaml":       "inputs: {tick: [}\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScript([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestScriptSourceReplay(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	require.NoError(t, err)
	src := NewScriptSource(s)

	f0 := src.Poll()
	assert.True(t, f0.Has(core.ActionLeft))
	assert.True(t, f0.Has(core.ActionDown))

	assert.True(t, src.Poll().Empty())
	assert.True(t, src.Poll().Empty())

	f3 := src.Poll()
	assert.True(t, f3.Has(core.ActionRotate))
	assert.True(t, f3.Has(core.ActionRight))

	assert.True(t, src.Poll().Empty())
	assert.True(t, src.Poll().Has(core.ActionQuit))
	assert.True(t, src.Poll().Has(core.ActionQuit))
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o600))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Ticks)

	_, err = LoadScript(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
