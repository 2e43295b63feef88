package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Layer identifies a parallax background layer.
type Layer int

const (
	LayerMountain Layer = iota
	LayerCloud
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerMountain:
		return "mountain"
	case LayerCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// BackgroundElement is a recycled parallax element.
type BackgroundElement struct {
	ID    EntityID
	Layer Layer
	X, Y  float64
	Speed float64
}

// ScrollObstacles moves obstacles left and despawns the ones past despawnX.
// Returns the number removed.
func ScrollObstacles(arena *Arena[Obstacle], dt, despawnX float64) int {
	for _, o := range arena.All() {
		o.X -= o.Speed * dt
	}
	return arena.RemoveIf(func(o *Obstacle) bool { return o.X < despawnX })
}

// SpawnBackground lays out both layers at their start positions.
func SpawnBackground(arena *Arena[BackgroundElement], bg config.BackgroundConfig) {
	spawnLayer(arena, LayerMountain, bg.Mountains)
	spawnLayer(arena, LayerCloud, bg.Clouds)
}

func spawnLayer(arena *Arena[BackgroundElement], layer Layer, lc config.LayerConfig) {
	for i := 0; i < lc.Count; i++ {
		id := arena.Insert(BackgroundElement{
			Layer: layer,
			X:     float64(i)*lc.Spacing + lc.StartX,
			Y:     lc.Y,
			Speed: lc.Speed,
		})
		if e, ok := arena.Get(id); ok {
			e.ID = id
		}
	}
}

// ScrollBackground moves background elements left. An element that crosses
// world.DespawnX is repositioned past world.RecycleX with a fresh random gap.
// Returns the number recycled.
func ScrollBackground(arena *Arena[BackgroundElement], dt float64, world config.WorldConfig, bg config.BackgroundConfig, rng *rand.Rand) int {
	recycled := 0
	for _, e := range arena.All() {
		e.X -= e.Speed * dt
		if e.X >= world.DespawnX {
			continue
		}
		lc := bg.Mountains
		if e.Layer == LayerCloud {
			lc = bg.Clouds
		}
		e.X = RecycleX(world, lc, rng)
		recycled++
	}
	return recycled
}

// RecycleX draws a re-entry position: RecycleX + BaseOffset + U(GapMin, GapMax).
func RecycleX(world config.WorldConfig, lc config.LayerConfig, rng *rand.Rand) float64 {
	return world.RecycleX + lc.BaseOffset + lc.GapMin + rng.Float64()*(lc.GapMax-lc.GapMin)
}
