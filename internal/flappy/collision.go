package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// CollisionKind reports what ended a session.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionBoundary
	CollisionObstacle
)

// String returns the collision kind name.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionBoundary:
		return "boundary"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// BoundaryCollision reports whether the player circle leaves ±bound.
func BoundaryCollision(p PlayerState, bound float64) bool {
	return p.Y-p.Radius < -bound || p.Y+p.Radius > bound
}

// ObstacleBounds returns the single collision rectangle of an obstacle.
// Rotation does not affect it.
func ObstacleBounds(o Obstacle) core.Box {
	g := o.Variant.Geometry()
	cx := o.X + g.OffsetX*g.Scale
	cy := o.Y + g.OffsetY*g.Scale
	return core.BoxFromCenter(cx, cy, BaseWidth*g.Scale*g.WidthFactor, BaseHeight*g.Scale*g.HeightFactor)
}

// SegmentBounds returns the collision rectangles of a precise obstacle in
// segment order.
func SegmentBounds(o Obstacle) []core.Box {
	g := o.Variant.Geometry()
	out := make([]core.Box, 0, len(g.Segments))
	for _, s := range g.Segments {
		cx := o.X + (g.OffsetX+s.OffsetX*BaseWidth)*g.Scale
		cy := o.Y + (g.OffsetY+s.OffsetY*SegmentYUnit)*g.Scale
		out = append(out, core.BoxFromCenter(cx, cy, BaseWidth*g.Scale*s.WidthFactor, BaseHeight*g.Scale*s.HeightFactor))
	}
	return out
}

// ObstacleCollision tests the player against one obstacle. The horizontal
// extent of the whole obstacle is checked first; only then is the variant's
// vertical test applied, either the single rectangle or each segment.
func ObstacleCollision(p PlayerState, o Obstacle) bool {
	player := p.Bounds()
	if !player.OverlapsX(ObstacleBounds(o)) {
		return false
	}

	if !o.Variant.Geometry().Precise {
		return player.OverlapsY(ObstacleBounds(o))
	}
	for _, seg := range SegmentBounds(o) {
		if player.Overlaps(seg) {
			return true
		}
	}
	return false
}

// DetectCollision runs the boundary test, then each live obstacle in arena
// order. The first hit wins.
func DetectCollision(p PlayerState, bound float64, obstacles *Arena[Obstacle]) (CollisionKind, EntityID) {
	if BoundaryCollision(p, bound) {
		return CollisionBoundary, EntityID{}
	}
	for id, o := range obstacles.All() {
		if ObstacleCollision(p, *o) {
			return CollisionObstacle, id
		}
	}
	return CollisionNone, EntityID{}
}
