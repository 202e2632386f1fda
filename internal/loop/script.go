package loop

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Script is a recorded input sequence for headless runs.
//
//	seed: 42
//	ticks: 600
//	inputs:
//	  - tick: 0
//	    actions: [left, left]
//	  - tick: 12
//	    actions: [rotate]
type Script struct {
	Seed   int64        `yaml:"seed"`
	Ticks  int          `yaml:"ticks"`
	Inputs []ScriptStep `yaml:"inputs"`
}

// ScriptStep lists the actions pressed on one tick.
type ScriptStep struct {
	Tick    int      `yaml:"tick"`
	Actions []string `yaml:"actions"`
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if s.Ticks < 0 {
		return Script{}, fmt.Errorf("script ticks must not be negative, got %d", s.Ticks)
	}
	for i, step := range s.Inputs {
		if step.Tick < 0 {
			return Script{}, fmt.Errorf("script input %d: negative tick %d", i, step.Tick)
		}
		for _, name := range step.Actions {
			if _, ok := core.ParseAction(name); !ok {
				return Script{}, fmt.Errorf("script input %d (tick %d): unknown action %q", i, step.Tick, name)
			}
		}
	}
	return s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ScriptSource replays a Script one tick per Poll. Once the script's
// tick count is reached it reports ActionQuit.
type ScriptSource struct {
	frames map[int]core.InputFrame
	ticks  int
	tick   int
}

// NewScriptSource builds a source from a validated script.
func NewScriptSource(s Script) *ScriptSource {
	src := &ScriptSource{
		frames: make(map[int]core.InputFrame),
		ticks:  s.Ticks,
	}
	steps := append([]ScriptStep(nil), s.Inputs...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	for _, step := range steps {
		f, ok := src.frames[step.Tick]
		if !ok {
			f = core.NewInputFrame()
		}
		for _, name := range step.Actions {
			if a, ok := core.ParseAction(name); ok {
				f.Set(a)
			}
		}
		src.frames[step.Tick] = f
	}
	return src
}

// Poll returns the actions scripted for the current tick.
func (s *ScriptSource) Poll() core.InputFrame {
	if s.ticks > 0 && s.tick >= s.ticks {
		f := core.NewInputFrame()
		f.Set(core.ActionQuit)
		return f
	}
	f, ok := s.frames[s.tick]
	s.tick++
	if !ok {
		return core.NewInputFrame()
	}
	return f.Clone()
}
