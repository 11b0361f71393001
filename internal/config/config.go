// Package config provides YAML-based tuning for the slicer and the
// difficulty progression applied on top of it.
package config

import "time"

// SlicerConfig contains all tuning for a round of the slicer.
type SlicerConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Throw      ThrowConfig      `yaml:"throw"`
	Knife      KnifeConfig      `yaml:"knife"`
	Round      RoundConfig      `yaml:"round"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Modes      ModesConfig      `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DisplayConfig is the logical play area. All positions, margins and
// speeds are in these units, y pointing down.
type DisplayConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the fixed-step simulation.
type PhysicsConfig struct {
	TickRate int     `yaml:"tick_rate"` // physics steps per second
	MaxFrame float64 `yaml:"max_frame"` // seconds; longer frames are clamped
	Gravity  float64 `yaml:"gravity"`   // downward acceleration, units/s²
	Mass     float64 `yaml:"mass"`      // mass of every thrown object
}

// SpawnConfig defines where and how often objects are thrown.
type SpawnConfig struct {
	Chance        float64 `yaml:"chance"`         // probability per physics step
	XMargin       float64 `yaml:"x_margin"`       // keep spawns this far from the side edges
	BottomMargin  float64 `yaml:"bottom_margin"`  // spawn this far below the bottom edge
	DespawnMargin float64 `yaml:"despawn_margin"` // remove once this far below the bottom edge
}

// ThrowConfig defines the toss impulse and the tumbling of thrown objects.
type ThrowConfig struct {
	MinHorizontal float64 `yaml:"min_horizontal"`
	MaxHorizontal float64 `yaml:"max_horizontal"`
	MinVertical   float64 `yaml:"min_vertical"`
	MaxVertical   float64 `yaml:"max_vertical"`
	SplitImpulse  float64 `yaml:"split_impulse"` // impulse pushing cut halves apart
	SpinFactor    float64 `yaml:"spin_factor"`   // radians/s per unit of horizontal speed
	MaxSpin       float64 `yaml:"max_spin"`      // radians/s
}

// KnifeConfig defines the gesture trail.
type KnifeConfig struct {
	TailLen int `yaml:"tail_len"`
}

// RoundConfig defines round timing.
type RoundConfig struct {
	Duration  float64 `yaml:"duration"`   // seconds of real time
	Burst     float64 `yaml:"burst"`      // seconds of bomb explosion burst
	Wipe      float64 `yaml:"wipe"`       // seconds of the closing screen wipe
	BurstSize float64 `yaml:"burst_size"` // final explosion radius
}

// ScoringConfig defines how cuts are scored and how combos decay.
type ScoringConfig struct {
	Policy         string  `yaml:"policy"`          // "log2", "linear" or "flat"
	ComboTimeout   float64 `yaml:"combo_timeout"`   // seconds without a cut before combo resets
	ComboHighlight float64 `yaml:"combo_highlight"` // seconds the combo indicator stays lit
}

// ModeConfig is the start parameters for one difficulty mode.
type ModeConfig struct {
	Title           string  `yaml:"title"`
	BombProbability float64 `yaml:"bomb_probability"`
	ScoreMultiplier float64 `yaml:"score_multiplier"`
}

// ModesConfig holds the three selectable modes.
type ModesConfig struct {
	Easy   ModeConfig `yaml:"easy"`
	Normal ModeConfig `yaml:"normal"`
	Hard   ModeConfig `yaml:"hard"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // added to the spawn chance factor at max difficulty
	BombIncrease    float64 `yaml:"bomb_increase"`    // added to bomb probability at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// Mode returns the start parameters for a preset. Unknown presets get Normal.
func (c SlicerConfig) Mode(preset DifficultyPreset) ModeConfig {
	switch preset {
	case DifficultyEasy:
		return c.Modes.Easy
	case DifficultyHard:
		return c.Modes.Hard
	default:
		return c.Modes.Normal
	}
}

// PhysicsStep returns the fixed physics step length.
func (c SlicerConfig) PhysicsStep() time.Duration {
	if c.Physics.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Physics.TickRate)
}

// MaxFrame returns the frame clamp for the fixed-step loop.
func (c SlicerConfig) MaxFrame() time.Duration {
	return time.Duration(c.Physics.MaxFrame * float64(time.Second))
}

// RoundDuration returns the real-time length of a round.
func (c SlicerConfig) RoundDuration() time.Duration {
	return time.Duration(c.Round.Duration * float64(time.Second))
}
