// Package config provides YAML-based game configuration loading and
// difficulty management for the blocks game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Timing     BlocksTiming     `yaml:"timing"`
	Gameplay   BlocksGameplay   `yaml:"gameplay"`
	Theme      BlocksTheme      `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksTiming defines how fast pieces fall, in simulation ticks.
type BlocksTiming struct {
	FallInterval    int `yaml:"fall_interval"`     // Ticks between forced drops at level 0
	MinFallInterval int `yaml:"min_fall_interval"` // Floor for the interval at max difficulty
}

// BlocksGameplay defines scoring and level parameters.
type BlocksGameplay struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// BlocksTheme defines the playfield colors as "#rrggbb" strings.
type BlocksTheme struct {
	Background string `yaml:"background"`
	Board      string `yaml:"board"`
	Preview    string `yaml:"preview"`
	Text       string `yaml:"text"`
}

// Palette is a parsed BlocksTheme.
type Palette struct {
	Background core.RGBA
	Board      core.RGBA
	Preview    core.RGBA
	Text       core.RGBA
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBackground,
		Board:      core.ColorBoard,
		Preview:    core.ColorPreview,
		Text:       core.ColorText,
	}
}

// Palette parses the theme colors. Empty entries keep the default color.
func (t BlocksTheme) Palette() (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		raw  string
		dst  *core.RGBA
	}{
		{"background", t.Background, &p.Background},
		{"board", t.Board, &p.Board},
		{"preview", t.Preview, &p.Preview},
		{"text", t.Text, &p.Text},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := core.ParseHex(f.raw)
		if err != nil {
			return p, fmt.Errorf("%w: theme.%s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c BlocksConfig) Validate() error {
	if c.Timing.FallInterval <= 0 {
		return fmt.Errorf("%w: timing.fall_interval must be positive, got %d", ErrInvalidConfig, c.Timing.FallInterval)
	}
	if c.Timing.MinFallInterval <= 0 || c.Timing.MinFallInterval > c.Timing.FallInterval {
		return fmt.Errorf("%w: timing.min_fall_interval must be in [1, %d], got %d",
			ErrInvalidConfig, c.Timing.FallInterval, c.Timing.MinFallInterval)
	}
	if c.Gameplay.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: gameplay.lines_per_level must be positive, got %d", ErrInvalidConfig, c.Gameplay.LinesPerLevel)
	}
	switch c.Difficulty.Progression.Type {
	case "", "lines", "score", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fall speed-up factor added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
