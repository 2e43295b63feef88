// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// World space has its origin at the screen center and y pointing up.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxFromCenter builds a box of the given size around (cx, cy).
func BoxFromCenter(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// BoxAroundCircle returns the bounding box of a circle.
func BoxAroundCircle(cx, cy, r float64) Box {
	return Box{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}
}

// OverlapsX reports whether the horizontal extents overlap.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.MaxX > o.MinX && b.MinX < o.MaxX
}

// OverlapsY reports whether the vertical extents overlap.
func (b Box) OverlapsY(o Box) bool {
	return b.MaxY > o.MinY && b.MinY < o.MaxY
}

// Overlaps reports whether two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	return b.OverlapsX(o) && b.OverlapsY(o)
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
