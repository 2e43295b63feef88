package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is one half of a spawned pair.
type Obstacle struct {
	ID       EntityID
	Variant  Variant
	X, Y     float64
	Rotation float64 // π for the upper, mirrored member
	Speed    float64
	Upper    bool
	Pair     uint64 // shared by both members of a pair
	Scored   bool   // already counted by the trailing window
}

// Spawner emits obstacle pairs on a repeating countdown.
type Spawner struct {
	cfg        config.ObstacleConfig
	spawnX     float64
	variants   []Variant
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	elapsed  float64
	nextPair uint64
}

// NewSpawner creates a spawner. variants must be non-empty; an empty set is
// rejected when the configuration is validated.
func NewSpawner(cfg config.FlappyConfig, variants []Variant, rng *rand.Rand, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:        cfg.Obstacles,
		spawnX:     cfg.World.SpawnX,
		variants:   variants,
		rng:        rng,
		difficulty: diff,
	}
}

// Reset restarts the countdown.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Update advances the countdown and spawns a pair into arena when it
// expires. At most one pair is spawned per call.
func (s *Spawner) Update(dt float64, score, ticks int, arena *Arena[Obstacle]) bool {
	s.elapsed += dt
	if s.elapsed < s.cfg.SpawnInterval {
		return false
	}
	s.elapsed = math.Mod(s.elapsed, s.cfg.SpawnInterval)
	s.SpawnPair(score, ticks, arena)
	return true
}

// SpawnPair places an upper and a lower obstacle sharing one gap center and
// one variant.
func (s *Spawner) SpawnPair(score, ticks int, arena *Arena[Obstacle]) (upper, lower EntityID) {
	center := s.rng.Float64()*2*s.cfg.GapRange - s.cfg.GapRange
	variant := s.variants[s.rng.Intn(len(s.variants))]
	half := s.difficulty.GapHalfWidth(s.cfg, score)
	speed := s.difficulty.Speed(s.cfg.Speed, score, ticks)

	upperY, lowerY := PairPositions(center, half, s.cfg.PairOffset)
	s.nextPair++

	upper = insertObstacle(arena, Obstacle{
		Variant:  variant,
		X:        s.spawnX,
		Y:        upperY,
		Rotation: math.Pi,
		Speed:    speed,
		Upper:    true,
		Pair:     s.nextPair,
	})
	lower = insertObstacle(arena, Obstacle{
		Variant: variant,
		X:       s.spawnX,
		Y:       lowerY,
		Speed:   speed,
		Pair:    s.nextPair,
	})
	return upper, lower
}

// PairPositions returns the vertical centers of the upper and lower
// obstacles around a gap.
func PairPositions(center, halfWidth, offset float64) (upper, lower float64) {
	return center + halfWidth + offset, center - halfWidth - offset
}

func insertObstacle(arena *Arena[Obstacle], o Obstacle) EntityID {
	id := arena.Insert(o)
	if p, ok := arena.Get(id); ok {
		p.ID = id
	}
	return id
}
