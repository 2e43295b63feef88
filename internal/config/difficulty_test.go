package config

import "testing"

func TestGapHalfWidthFloor(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)
	obs := DefaultFlappyConfig().Obstacles

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 100},
		{4, 100},
		{5, 90},
		{9, 90},
		{10, 80},
		{15, 80}, // would be 70 without the floor
		{1000, 80},
	}

	for _, tc := range tests {
		if got := d.GapHalfWidth(obs, tc.score); got != tc.expected {
			t.Errorf("GapHalfWidth(score=%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestGapHalfWidthNeverBelowFloor(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)
	obs := DefaultFlappyConfig().Obstacles
	obs.GapStepReduction = 37

	for score := 0; score < 500; score++ {
		if got := d.GapHalfWidth(obs, score); got < 80 {
			t.Fatalf("score %d produced half-width %f below floor", score, got)
		}
	}
}

func TestSpeedProgression(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty

	fixed := NewDifficultyManager(cfg)
	if got := fixed.Speed(200, 1000, 0); got != 200 {
		t.Errorf("disabled difficulty should keep base speed, got %f", got)
	}

	cfg.Enabled = true
	d := NewDifficultyManager(cfg)
	if got := d.Speed(200, 0, 0); got != 200 {
		t.Errorf("speed at score 0 = %f, expected 200", got)
	}
	if got := d.Speed(200, 100, 0); got != 300 {
		t.Errorf("speed at max difficulty = %f, expected 300", got)
	}
	if got := d.Speed(200, 5000, 0); got != 300 {
		t.Errorf("speed should clamp at max difficulty, got %f", got)
	}
}

func TestLevelTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level at half time = %f, expected 0.75", got)
	}
}
