package config

import (
	_ "embed"
)

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// DefaultSlicerConfig returns the hardcoded slicer configuration, used when
// the embedded YAML cannot be parsed.
func DefaultSlicerConfig() SlicerConfig {
	return SlicerConfig{
		Display: DisplayConfig{
			Width:  320,
			Height: 240,
		},
		Physics: PhysicsConfig{
			TickRate: 60,
			MaxFrame: 0.25,
			Gravity:  240,
			Mass:     1,
		},
		Spawn: SpawnConfig{
			Chance:        0.015,
			XMargin:       40,
			BottomMargin:  10,
			DespawnMargin: 30,
		},
		Throw: ThrowConfig{
			MinHorizontal: 10,
			MaxHorizontal: 50,
			MinVertical:   250,
			MaxVertical:   330,
			SplitImpulse:  40,
			SpinFactor:    0.05,
			MaxSpin:       6,
		},
		Knife: KnifeConfig{
			TailLen: 4,
		},
		Round: RoundConfig{
			Duration:  30,
			Burst:     0.8,
			Wipe:      0.6,
			BurstSize: 160,
		},
		Scoring: ScoringConfig{
			Policy:         "log2",
			ComboTimeout:   1.0,
			ComboHighlight: 0.5,
		},
		Modes: ModesConfig{
			Easy:   ModeConfig{Title: "Easy 1x", BombProbability: 0.1, ScoreMultiplier: 1},
			Normal: ModeConfig{Title: "Medium 2x", BombProbability: 0.2, ScoreMultiplier: 2},
			Hard:   ModeConfig{Title: "Hard 3x", BombProbability: 0.3, ScoreMultiplier: 3},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 1.0,
				BombIncrease:    0.1,
			},
		},
	}
}
