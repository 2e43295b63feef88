package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestScoreDedup(t *testing.T) {
	win := config.DefaultFlappyConfig().Scoring

	tests := []struct {
		name   string
		xs     []float64
		points int
	}{
		{"only 45.2 is inside the window", []float64{44.6, 45.2}, 1},
		{"both round to 45 inside the window", []float64{45.2, 45.4}, 1},
		{"pair inside window", []float64{47.4, 47.4}, 1},
		{"same rounded x", []float64{46.6, 47.2}, 1},
		{"distinct rounded x", []float64{46.4, 47.6}, 2},
		{"outside window", []float64{44.9, 50.0, 60}, 0},
		{"lower window edge excluded", []float64{45.0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arena := NewArena[Obstacle]()
			for _, x := range tc.xs {
				arena.Insert(Obstacle{X: x})
			}

			var q EventQueue
			score := 0
			got := ApplyScoring(&score, 100, win, arena, &q)
			if got != tc.points || score != tc.points {
				t.Errorf("ApplyScoring = %d (score %d), expected %d", got, score, tc.points)
			}
			if q.Len() != tc.points {
				t.Errorf("%d score events, expected %d", q.Len(), tc.points)
			}
		})
	}
}

func TestScoreOncePerObstacle(t *testing.T) {
	win := config.DefaultFlappyConfig().Scoring
	arena := NewArena[Obstacle]()
	arena.Insert(Obstacle{X: -251, Speed: 60, Upper: true})
	arena.Insert(Obstacle{X: -251, Speed: 60})

	var q EventQueue
	score := 0
	// The pair lingers in the window for several ticks.
	for i := 0; i < 4; i++ {
		ApplyScoring(&score, -200, win, arena, &q)
		ScrollObstacles(arena, 1.0/60, -600)
	}
	if score != 1 {
		t.Errorf("score = %d, expected 1", score)
	}
}

func TestScoreFrameSkip(t *testing.T) {
	// A step larger than the window jumps straight over it.
	win := config.DefaultFlappyConfig().Scoring
	arena := NewArena[Obstacle]()
	arena.Insert(Obstacle{X: -249, Speed: 200})

	var q EventQueue
	score := 0
	for i := 0; i < 3; i++ {
		ScrollObstacles(arena, 0.05, -600) // 10 units per tick
		ApplyScoring(&score, -200, win, arena, &q)
	}
	if score != 0 {
		t.Errorf("score = %d; skipped windows are not scored", score)
	}
}
