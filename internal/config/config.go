// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// FlappyConfig contains all tunables of the simulation.
// World units: the playfield is 800x600 with the origin at its center.
type FlappyConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Background BackgroundConfig `yaml:"background"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // units/s², pulls toward -y
	JumpForce   float64 `yaml:"jump_force"`   // vertical velocity set on flap
	TiltDivisor float64 `yaml:"tilt_divisor"` // velocity that maps to full tilt
	TiltMax     float64 `yaml:"tilt_max"`     // radians at full tilt
}

// WorldConfig defines playfield geometry.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Bound    float64 `yaml:"bound"`     // player must stay within ±Bound vertically
	PlayerX  float64 `yaml:"player_x"`  // fixed horizontal player position
	SpawnX   float64 `yaml:"spawn_x"`   // obstacles appear here
	DespawnX float64 `yaml:"despawn_x"` // entities left of this are off-screen
	RecycleX float64 `yaml:"recycle_x"` // background re-entry base position
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	Speed            float64  `yaml:"speed"`
	SpawnInterval    float64  `yaml:"spawn_interval"`      // seconds between pairs
	GapRange         float64  `yaml:"gap_range"`           // gap center drawn from [-range, range)
	BaseGapHalfWidth float64  `yaml:"base_gap_half_width"` // half-width at score 0
	MinGapHalfWidth  float64  `yaml:"min_gap_half_width"`  // floor, keeps the gap traversable
	GapStepPoints    int      `yaml:"gap_step_points"`     // score points per reduction step
	GapStepReduction float64  `yaml:"gap_step_reduction"`  // half-width removed per step
	PairOffset       float64  `yaml:"pair_offset"`         // distance from gap edge to obstacle center
	Variants         []string `yaml:"variants"`            // enabled obstacle variants
}

// BackgroundConfig defines the parallax layers.
type BackgroundConfig struct {
	Mountains LayerConfig `yaml:"mountains"`
	Clouds    LayerConfig `yaml:"clouds"`
}

// LayerConfig defines one recycled background layer.
type LayerConfig struct {
	Count      int     `yaml:"count"`
	Speed      float64 `yaml:"speed"`
	Y          float64 `yaml:"y"`
	StartX     float64 `yaml:"start_x"`
	Spacing    float64 `yaml:"spacing"`     // initial distance between elements
	BaseOffset float64 `yaml:"base_offset"` // fixed re-entry offset past RecycleX
	GapMin     float64 `yaml:"gap_min"`     // random re-entry gap lower bound
	GapMax     float64 `yaml:"gap_max"`     // random re-entry gap upper bound
}

// ScoringConfig defines the trailing "just passed" window.
// An obstacle scores while player.x-WindowFar < x < player.x-WindowNear.
type ScoringConfig struct {
	WindowNear float64 `yaml:"window_near"`
	WindowFar  float64 `yaml:"window_far"`
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
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
