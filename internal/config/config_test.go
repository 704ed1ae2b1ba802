package config

import "testing"

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	// The embedded YAML is the canonical default; the hardcoded fallback
	// must stay in sync with it.
	loaded, err := LoadPebbles("")
	if err != nil {
		t.Fatalf("LoadPebbles: %v", err)
	}

	want := DefaultPebblesConfig()
	if loaded != want {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", loaded, want)
	}
}

func TestApplyPebblesPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPebblesConfig()
			ApplyPebblesPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if tc.wantEnabled && cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level at score 0 = %v, want 0", got)
	}
	if got := d.Level(500, 0); got != 0.5 {
		t.Errorf("Level at half max = %v, want 0.5", got)
	}
	if got := d.Level(5000, 0); got != 1.0 {
		t.Errorf("Level past max = %v, want 1", got)
	}

	// Speed doubles at max difficulty with multiplier 1.0
	if got := d.FallSpeed(2.0, 5000, 0); got != 4.0 {
		t.Errorf("FallSpeed at max = %v, want 4", got)
	}

	d.SetEnabled(false)
	if got := d.Level(5000, 0); got != 0.0 {
		t.Errorf("Level when disabled = %v, want initial level", got)
	}
}
