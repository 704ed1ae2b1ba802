// Package config provides YAML-based game configuration loading and
// difficulty management for Pebble Harmony.
package config

// PebblesConfig contains all configuration for the Pebble Harmony game.
type PebblesConfig struct {
	Board      PebblesBoard     `yaml:"board"`
	Physics    PebblesPhysics   `yaml:"physics"`
	Pieces     PebblesPieces    `yaml:"pieces"`
	Scoring    PebblesScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PebblesBoard defines the board dimensions and match rule.
type PebblesBoard struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	MatchThreshold int `yaml:"match_threshold"`
}

// PebblesPhysics defines fall speed parameters, in cells per second.
type PebblesPhysics struct {
	FallSpeed float64 `yaml:"fall_speed"`
	DropSpeed float64 `yaml:"drop_speed"`
}

// PebblesPieces defines piece generation parameters.
type PebblesPieces struct {
	SpawnColumns [2]int  `yaml:"spawn_columns"`
	GlowChance   float64 `yaml:"glow_chance"`
}

// PebblesScoring defines the scoring values.
type PebblesScoring struct {
	PebbleValue int `yaml:"pebble_value"`
	ChainBonus  int `yaml:"chain_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
