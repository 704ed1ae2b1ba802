package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPebbles loads the Pebble Harmony configuration.
// Search order: customPath -> ~/.pebbleharmony/configs/pebbles.yaml ->
// ./configs/pebbles.yaml -> embedded default.
func LoadPebbles(customPath string) (PebblesConfig, error) {
	var cfg PebblesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pebbles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pebbles.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPebblesYAML, &cfg); err != nil {
		return DefaultPebblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pebbleharmony", "configs", filename)
}

// ApplyPebblesPreset modifies the config based on a difficulty preset.
func ApplyPebblesPreset(cfg *PebblesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust base speed for the fixed-start presets
	switch preset {
	case DifficultyEasy:
		cfg.Physics.FallSpeed = 2.0
	case DifficultyHard:
		cfg.Physics.FallSpeed = 3.5
	}
}
