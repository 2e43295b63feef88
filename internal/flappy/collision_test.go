package flappy

import (
	"math"
	"testing"
)

func TestBoundaryCollision(t *testing.T) {
	tests := []struct {
		name   string
		y, r   float64
		expect bool
	}{
		{"center", 0, 12, false},
		{"near top", 275, 12, true},
		{"near bottom", -275, 12, true},
		{"touching top", 268, 12, false},
		{"small radius fits", 269, 10, false},
		{"below floor", -400, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlayerState{Y: tc.y, Radius: tc.r}
			if got := BoundaryCollision(p, 280); got != tc.expect {
				t.Errorf("BoundaryCollision(y=%v, r=%v) = %v, expected %v", tc.y, tc.r, got, tc.expect)
			}
		})
	}
}

func TestBoundaryCollisionIdempotent(t *testing.T) {
	for _, y := range []float64{0, 268, 275, -300} {
		p := PlayerState{Y: y, Radius: 12}
		first := BoundaryCollision(p, 280)
		second := BoundaryCollision(p, 280)
		if first != second {
			t.Errorf("y=%v: results differ between calls", y)
		}
	}
}

func TestSimpleObstacleXOverlap(t *testing.T) {
	o := Obstacle{Variant: VariantGreen, X: 100, Y: 0}
	b := ObstacleBounds(o)

	// Half-width is 0.8*52/2 = 20.8
	if math.Abs(b.MinX-79.2) > eps || math.Abs(b.MaxX-120.8) > eps {
		t.Fatalf("bounds = %+v", b)
	}

	for _, dx := range []float64{-5, 5} {
		p := PlayerState{X: 100 + dx, Y: 0, Radius: 12}
		if !p.Bounds().OverlapsX(b) {
			t.Errorf("player at x=%v should overlap in X", p.X)
		}
		if !ObstacleCollision(p, o) {
			t.Errorf("player at (%v, 0) inside the pipe should collide", p.X)
		}
	}
}

func TestSimpleObstacleCollision(t *testing.T) {
	// Green pipe at origin: 41.6 wide, 288 tall
	o := Obstacle{Variant: VariantGreen, X: 0, Y: 0}

	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 0, 0, true},
		{"above top edge", 0, 157, false},
		{"grazing top edge", 0, 155, true},
		{"left of pipe", -33, 0, false},
		{"grazing left edge", -32, 0, true},
		{"x overlap only", 0, 400, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlayerState{X: tc.x, Y: tc.y, Radius: 12}
			if got := ObstacleCollision(p, o); got != tc.expect {
				t.Errorf("ObstacleCollision at (%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expect)
			}
		})
	}
}

func TestRotationIgnored(t *testing.T) {
	p := PlayerState{X: 0, Y: 100, Radius: 12}
	lower := Obstacle{Variant: VariantRed, X: 0, Y: 0}
	upper := lower
	upper.Rotation = 3.14159
	upper.Upper = true

	if ObstacleCollision(p, lower) != ObstacleCollision(p, upper) {
		t.Error("rotation must not change the collision outcome")
	}
}

func TestPreciseSegmentsAvoidFalsePositive(t *testing.T) {
	// Lantern2 at origin. Segment 0 spans x [-6.76, 2.6], y [3.2, 54.4];
	// segment 1 spans x [-2.6, 6.76], y [-54.4, -3.2].
	o := Obstacle{Variant: VariantLantern2, X: 0, Y: 0}
	p := PlayerState{X: -15, Y: -30, Radius: 10}

	segs := SegmentBounds(o)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if !p.Bounds().OverlapsX(segs[0]) || p.Bounds().OverlapsX(segs[1]) {
		t.Fatal("player should overlap segment 0 only in X")
	}
	if !p.Bounds().Overlaps(ObstacleBounds(o)) {
		t.Fatal("the single bounding rectangle would flag this position")
	}

	if ObstacleCollision(p, o) {
		t.Error("precise test should report no collision")
	}

	p.Y = 30
	if !ObstacleCollision(p, o) {
		t.Error("player inside segment 0 should collide")
	}
}

func TestSegmentEdgesCollide(t *testing.T) {
	// A player grazing the outer edge of any segment collides.
	for _, v := range AllVariants() {
		if !v.Geometry().Precise {
			continue
		}
		o := Obstacle{Variant: v, X: 0, Y: 0}
		for i, seg := range SegmentBounds(o) {
			cy := (seg.MinY + seg.MaxY) / 2
			left := PlayerState{X: seg.MinX - 9.9, Y: cy, Radius: 10}
			right := PlayerState{X: seg.MaxX + 9.9, Y: cy, Radius: 10}
			if !ObstacleCollision(left, o) {
				t.Errorf("%s segment %d: left edge at x=%.2f does not collide", v.Name(), i, seg.MinX)
			}
			if !ObstacleCollision(right, o) {
				t.Errorf("%s segment %d: right edge at x=%.2f does not collide", v.Name(), i, seg.MaxX)
			}
		}
	}
}

func TestPreciseSegmentOffsets(t *testing.T) {
	o := Obstacle{Variant: VariantGourd3, X: 10, Y: 20}
	segs := SegmentBounds(o)

	// Center y = 20 + (-3 + 0.6*160) * 0.5 = 66.5; height = 320*0.5*0.3 = 48
	top := segs[2]
	if cy := (top.MinY + top.MaxY) / 2; cy < 66.5-eps || cy > 66.5+eps {
		t.Errorf("segment center y = %f, expected 66.5", cy)
	}
	if h := top.Height(); h < 48-eps || h > 48+eps {
		t.Errorf("segment height = %f, expected 48", h)
	}
	// Center x = 10 + 0*52*0.5; width = 52*0.5*0.6 = 15.6
	if w := top.Width(); w < 15.6-eps || w > 15.6+eps {
		t.Errorf("segment width = %f, expected 15.6", w)
	}
}

func TestObstacleXShortCircuit(t *testing.T) {
	// Far to the right of every variant: no collision regardless of y.
	for _, v := range AllVariants() {
		o := Obstacle{Variant: v, X: 0, Y: 0}
		p := PlayerState{X: 60, Y: 0, Radius: 12}
		if ObstacleCollision(p, o) {
			t.Errorf("%s: collision reported without X overlap", v.Name())
		}
	}
}

func TestDetectCollision(t *testing.T) {
	arena := NewArena[Obstacle]()
	arena.Insert(Obstacle{Variant: VariantGreen, X: 300, Y: 0})
	hit := arena.Insert(Obstacle{Variant: VariantGreen, X: -200, Y: 0})

	p := PlayerState{X: -200, Y: 0, Radius: 12}
	kind, id := DetectCollision(p, 280, arena)
	if kind != CollisionObstacle || id != hit {
		t.Errorf("DetectCollision = %s, %v; expected obstacle %v", kind, id, hit)
	}

	// Boundary wins over obstacles
	p.Y = 279
	if kind, _ := DetectCollision(p, 280, arena); kind != CollisionBoundary {
		t.Errorf("expected boundary collision, got %s", kind)
	}

	p = PlayerState{X: 0, Y: 0, Radius: 12}
	if kind, _ := DetectCollision(p, 280, arena); kind != CollisionNone {
		t.Errorf("expected no collision, got %s", kind)
	}
}
