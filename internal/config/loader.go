package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlicer loads the slicer configuration.
// Search order: customPath -> ~/.slicer/configs/slicer.yaml -> ./configs/slicer.yaml -> embedded default.
// Files are applied on top of the defaults, so a file may set only the keys
// it wants to change.
func LoadSlicer(customPath string) (SlicerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlicerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSlicer(data)
		if err != nil {
			return SlicerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slicer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSlicer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "slicer.yaml")); err == nil {
		if cfg, err := parseSlicer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSlicer(defaultSlicerYAML)
	if err != nil {
		return DefaultSlicerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseSlicer(data []byte) (SlicerConfig, error) {
	cfg := DefaultSlicerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c SlicerConfig) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display must be positive, got %vx%v", c.Display.Width, c.Display.Height))
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %d", c.Physics.TickRate))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must pull down (positive), got %v", c.Physics.Gravity))
	}
	if c.Physics.Mass <= 0 {
		errs = append(errs, fmt.Errorf("physics.mass must be positive, got %v", c.Physics.Mass))
	}
	if c.Spawn.Chance < 0 || c.Spawn.Chance > 1 {
		errs = append(errs, fmt.Errorf("spawn.chance must be in [0, 1], got %v", c.Spawn.Chance))
	}
	if c.Spawn.BottomMargin >= c.Spawn.DespawnMargin {
		errs = append(errs, fmt.Errorf("spawn.bottom_margin (%v) must be below spawn.despawn_margin (%v)",
			c.Spawn.BottomMargin, c.Spawn.DespawnMargin))
	}
	if 2*c.Spawn.XMargin >= c.Display.Width {
		errs = append(errs, fmt.Errorf("spawn.x_margin %v leaves no room to spawn", c.Spawn.XMargin))
	}
	if c.Throw.MinHorizontal > c.Throw.MaxHorizontal || c.Throw.MinVertical > c.Throw.MaxVertical {
		errs = append(errs, errors.New("throw minimums must not exceed maximums"))
	}
	if c.Knife.TailLen < 2 {
		errs = append(errs, fmt.Errorf("knife.tail_len must be at least 2, got %d", c.Knife.TailLen))
	}
	if c.Round.Duration <= 0 {
		errs = append(errs, fmt.Errorf("round.duration must be positive, got %v", c.Round.Duration))
	}
	if _, ok := scoringPolicies[c.Scoring.Policy]; !ok {
		errs = append(errs, fmt.Errorf("scoring.policy %q is not one of log2, linear, flat", c.Scoring.Policy))
	}
	for _, p := range Presets {
		if m := c.Mode(p); m.BombProbability < 0 || m.BombProbability > 1 {
			errs = append(errs, fmt.Errorf("modes.%s.bomb_probability must be in [0, 1], got %v", p, m.BombProbability))
		}
	}
	return errors.Join(errs...)
}

var scoringPolicies = map[string]struct{}{
	"log2":   {},
	"linear": {},
	"flat":   {},
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slicer", "configs", filename)
}

// ApplySlicerPreset sets the starting difficulty level for a preset and
// returns the mode's start parameters.
func ApplySlicerPreset(cfg *SlicerConfig, preset DifficultyPreset) ModeConfig {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	return cfg.Mode(preset)
}
