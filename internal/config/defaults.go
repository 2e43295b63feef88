package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			Gravity:     980.0,
			JumpForce:   400.0,
			TiltDivisor: 300.0,
			TiltMax:     0.5,
		},
		World: WorldConfig{
			Width:    800.0,
			Height:   600.0,
			Bound:    280.0,
			PlayerX:  -200.0,
			SpawnX:   500.0,
			DespawnX: -600.0,
			RecycleX: 600.0,
		},
		Obstacles: ObstacleConfig{
			Speed:            200.0,
			SpawnInterval:    2.0,
			GapRange:         100.0,
			BaseGapHalfWidth: 100.0,
			MinGapHalfWidth:  80.0,
			GapStepPoints:    5,
			GapStepReduction: 10.0,
			PairOffset:       150.0,
			Variants: []string{
				"green", "red",
				"colorful_gourd3", "colorful_gourd4",
				"lantern2", "lantern3",
				"gourd3", "gourd5",
			},
		},
		Background: BackgroundConfig{
			Mountains: LayerConfig{
				Count:      5,
				Speed:      50.0,
				Y:          -250.0,
				StartX:     -400.0,
				Spacing:    200.0,
				BaseOffset: 200.0,
				GapMin:     100.0,
				GapMax:     400.0,
			},
			Clouds: LayerConfig{
				Count:      3,
				Speed:      30.0,
				Y:          200.0,
				StartX:     -300.0,
				Spacing:    300.0,
				BaseOffset: 300.0,
				GapMin:     200.0,
				GapMax:     600.0,
			},
		},
		Scoring: ScoringConfig{
			WindowNear: 50.0,
			WindowFar:  55.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
