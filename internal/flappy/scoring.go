package flappy

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// CollectPasses returns the rounded x positions of unscored obstacles inside
// the trailing window (playerX-WindowFar, playerX-WindowNear), deduplicated
// and sorted, and marks those obstacles scored. Each entry is worth one
// point; both members of a pair share an x and collapse into one entry.
//
// An obstacle that moves past the whole window within a single tick is never
// counted.
func CollectPasses(playerX float64, win config.ScoringConfig, obstacles *Arena[Obstacle]) []int {
	lo, hi := playerX-win.WindowFar, playerX-win.WindowNear
	seen := make(map[int]struct{})
	for _, o := range obstacles.All() {
		if o.Scored || o.X <= lo || o.X >= hi {
			continue
		}
		o.Scored = true
		seen[int(math.Round(o.X))] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	slices.Sort(out)
	return out
}

// ApplyScoring adds one point and one score sound per passed position.
// Returns the points added.
func ApplyScoring(score *int, playerX float64, win config.ScoringConfig, obstacles *Arena[Obstacle], events *EventQueue) int {
	passed := CollectPasses(playerX, win, obstacles)
	for range passed {
		*score++
		events.Push(SoundScore)
	}
	return len(passed)
}
