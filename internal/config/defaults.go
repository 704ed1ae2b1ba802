package config

import (
	_ "embed"
)

//go:embed defaults/pebbles.yaml
var defaultPebblesYAML []byte

// DefaultPebblesConfig returns the default Pebble Harmony configuration.
func DefaultPebblesConfig() PebblesConfig {
	return PebblesConfig{
		Board: PebblesBoard{
			Width:          6,
			Height:         12,
			MatchThreshold: 4,
		},
		Physics: PebblesPhysics{
			FallSpeed: 2.5,
			DropSpeed: 18.0,
		},
		Pieces: PebblesPieces{
			SpawnColumns: [2]int{2, 3},
			GlowChance:   0.04,
		},
		Scoring: PebblesScoring{
			PebbleValue: 10,
			ChainBonus:  50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pebbles":
		return defaultPebblesYAML
	default:
		return nil
	}
}
