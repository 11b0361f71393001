package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSlicer(defaultSlicerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSlicerConfig()) {
		t.Errorf("embedded defaults differ from DefaultSlicerConfig():\n%+v\n%+v", cfg, DefaultSlicerConfig())
	}
	if err := DefaultSlicerConfig().Validate(); err != nil {
		t.Errorf("DefaultSlicerConfig() is invalid: %v", err)
	}
}

func TestLoadSlicerCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slicer.yaml")
	data := []byte("round:\n  duration: 45\nknife:\n  tail_len: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlicer(path)
	if err != nil {
		t.Fatalf("LoadSlicer() error: %v", err)
	}
	if cfg.Round.Duration != 45 || cfg.Knife.TailLen != 5 {
		t.Errorf("overrides not applied: duration=%v tail_len=%d", cfg.Round.Duration, cfg.Knife.TailLen)
	}
	if cfg.Physics.Gravity != DefaultSlicerConfig().Physics.Gravity {
		t.Errorf("unset key lost its default: gravity=%v", cfg.Physics.Gravity)
	}
}

func TestLoadSlicerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlicer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "round: [1, 2"},
		{"zero tick rate", "physics:\n  tick_rate: 0\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"upward gravity", "physics:\n  gravity: -240\n"},
		{"spawn below despawn", "spawn:\n  bottom_margin: 50\n  despawn_margin: 20\n"},
		{"short knife", "knife:\n  tail_len: 1\n"},
		{"unknown policy", "scoring:\n  policy: fibonacci\n"},
		{"bomb probability", "modes:\n  hard:\n    bomb_probability: 1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSlicer(path); err == nil {
				t.Error("LoadSlicer() succeeded, expected an error")
			}
		})
	}
}

func TestApplySlicerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		multiplier float64
		level      float64
	}{
		{DifficultyEasy, 1, 0.0},
		{DifficultyNormal, 2, 0.3},
		{DifficultyHard, 3, 0.6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSlicerConfig()
			mode := ApplySlicerPreset(&cfg, tc.preset)
			if mode.ScoreMultiplier != tc.multiplier {
				t.Errorf("ScoreMultiplier = %v, expected %v", mode.ScoreMultiplier, tc.multiplier)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultSlicerConfig()
	if cfg.Mode("bogus") != cfg.Modes.Normal {
		t.Error("unknown preset should fall back to normal")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultSlicerConfig().Difficulty

	tests := []struct {
		name     string
		cfg      func(DifficultyConfig) DifficultyConfig
		score    int
		elapsed  float64
		expected float64
	}{
		{"start of round", func(c DifficultyConfig) DifficultyConfig { return c }, 0, 0, 0},
		{"half way", func(c DifficultyConfig) DifficultyConfig { return c }, 0, 15, 0.5},
		{"past max", func(c DifficultyConfig) DifficultyConfig { return c }, 0, 90, 1},
		{"score progression", func(c DifficultyConfig) DifficultyConfig {
			c.Progression = ProgressionConfig{Type: "score", MaxAt: 100}
			return c
		}, 25, 0, 0.25},
		{"disabled", func(c DifficultyConfig) DifficultyConfig {
			c.Enabled = false
			c.InitialLevel = 0.4
			return c
		}, 100, 100, 0.4},
		{"none", func(c DifficultyConfig) DifficultyConfig {
			c.Progression.Type = "none"
			return c
		}, 100, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg(cfg))
			if got := d.Level(tc.score, tc.elapsed); got != tc.expected {
				t.Errorf("Level() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultSlicerConfig().Difficulty
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.SpawnChance(0.02, 0, 0); math.Abs(got-0.03) > 1e-12 {
		t.Errorf("SpawnChance() = %v, expected 0.03", got)
	}
	if got := d.BombProbability(0.2, 0, 0); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("BombProbability() = %v, expected 0.25", got)
	}
	if got := d.BombProbability(0.99, 0, 1000); got != 1 {
		t.Errorf("BombProbability() = %v, expected clamp to 1", got)
	}
}
