package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid marks a configuration fault. The game refuses to start.
	ErrInvalid = errors.New("invalid configuration")

	// ErrNoVariants is returned when no obstacle variant is enabled.
	ErrNoVariants = fmt.Errorf("%w: obstacle variant set is empty", ErrInvalid)
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays YAML onto the hardcoded defaults so partial files work.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks for configuration faults.
// Variant names are checked by the game itself, which owns the catalog.
func (c FlappyConfig) Validate() error {
	if len(c.Obstacles.Variants) == 0 {
		return ErrNoVariants
	}

	checks := []struct {
		ok   bool
		what string
	}{
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.TiltDivisor > 0, "physics.tilt_divisor must be positive"},
		{c.World.Bound > 0, "world.bound must be positive"},
		{c.World.Width > 0 && c.World.Height > 0, "world size must be positive"},
		{c.World.DespawnX < c.World.SpawnX, "world.despawn_x must be left of world.spawn_x"},
		{c.Obstacles.Speed > 0, "obstacles.speed must be positive"},
		{c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive"},
		{c.Obstacles.GapRange >= 0, "obstacles.gap_range must not be negative"},
		{c.Obstacles.MinGapHalfWidth > 0, "obstacles.min_gap_half_width must be positive"},
		{c.Obstacles.BaseGapHalfWidth >= c.Obstacles.MinGapHalfWidth, "obstacles.base_gap_half_width must not be below the floor"},
		{c.Obstacles.GapStepPoints >= 0, "obstacles.gap_step_points must not be negative"},
		{c.Scoring.WindowFar > c.Scoring.WindowNear, "scoring.window_far must exceed scoring.window_near"},
		{validLayer(c.Background.Mountains), "background.mountains is malformed"},
		{validLayer(c.Background.Clouds), "background.clouds is malformed"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}
	return nil
}

func validLayer(l LayerConfig) bool {
	return l.Count >= 0 && l.Speed >= 0 && l.GapMax >= l.GapMin && l.GapMin >= 0
}

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
