package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
// It mirrors defaults/blocks.yaml and backs the embedded file if that fails to parse.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Timing: BlocksTiming{
			FallInterval:    30,
			MinFallInterval: 4,
		},
		Gameplay: BlocksGameplay{
			LinesPerLevel: 10,
		},
		Theme: BlocksTheme{
			Background: "#000000",
			Board:      "#555555",
			Preview:    "#777777",
			Text:       "#eeeeee",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
