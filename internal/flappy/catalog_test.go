package flappy

import "testing"

func TestCharacterRadius(t *testing.T) {
	tests := []struct {
		ch     Character
		radius float64
	}{
		{CharacterYellowBird, 12},
		{CharacterRedBird, 12},
		{CharacterBlueBird, 12},
		{CharacterWuSaQi, 10},
		{CharacterJiYi, 10},
		{CharacterXiaoBa, 10},
	}

	for _, tc := range tests {
		if got := tc.ch.Radius(); got != tc.radius {
			t.Errorf("%s radius = %f, expected %f", tc.ch, got, tc.radius)
		}
	}
}

func TestCharacterCycle(t *testing.T) {
	all := AllCharacters()
	if len(all) != 6 {
		t.Fatalf("expected 6 characters, got %d", len(all))
	}

	c := CharacterYellowBird
	for range all {
		c = c.Next()
	}
	if c != CharacterYellowBird {
		t.Errorf("Next() should wrap around after %d steps, got %s", len(all), c)
	}

	if got := CharacterYellowBird.Prev(); got != CharacterXiaoBa {
		t.Errorf("Prev() of first = %s, expected XiaoBa", got)
	}
	for _, ch := range all {
		if ch.Next().Prev() != ch {
			t.Errorf("Next/Prev not inverse for %s", ch)
		}
	}
}

func TestParseCharacter(t *testing.T) {
	for _, ch := range AllCharacters() {
		got, err := ParseCharacter(ch.Name())
		if err != nil || got != ch {
			t.Errorf("ParseCharacter(%q) = %v, %v", ch.Name(), got, err)
		}
	}
	if got, err := ParseCharacter("Blue Bird"); err != nil || got != CharacterBlueBird {
		t.Errorf("display name should parse, got %v, %v", got, err)
	}
	if _, err := ParseCharacter("penguin"); err == nil {
		t.Error("expected error for unknown character")
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range AllVariants() {
		got, err := ParseVariant(v.Name())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.Name(), got, err)
		}
	}
	if _, err := ParseVariant("purple"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestVariantGeometry(t *testing.T) {
	tests := []struct {
		v        Variant
		scale    float64
		wf, hf   float64
		offY     float64
		precise  bool
		segments int
	}{
		{VariantGreen, 1.0, 0.8, 0.9, 0, false, 0},
		{VariantRed, 1.0, 0.8, 0.9, 0, false, 0},
		{VariantColorfulGourd3, 0.5, 0.6, 0.7, -5, true, 3},
		{VariantColorfulGourd4, 0.5, 0.6, 0.7, -5, true, 4},
		{VariantLantern2, 0.4, 0.7, 0.8, 0, true, 2},
		{VariantLantern3, 0.4, 0.7, 0.8, 0, true, 3},
		{VariantGourd3, 0.5, 0.6, 0.8, -3, true, 3},
		{VariantGourd5, 0.5, 0.6, 0.8, -3, true, 5},
	}

	if len(tests) != len(AllVariants()) {
		t.Fatalf("table covers %d variants, catalog has %d", len(tests), len(AllVariants()))
	}

	for _, tc := range tests {
		t.Run(tc.v.Name(), func(t *testing.T) {
			g := tc.v.Geometry()
			if g.Scale != tc.scale || g.WidthFactor != tc.wf || g.HeightFactor != tc.hf {
				t.Errorf("geometry = %+v", g)
			}
			if g.OffsetX != 0 || g.OffsetY != tc.offY {
				t.Errorf("offset = (%f, %f), expected (0, %f)", g.OffsetX, g.OffsetY, tc.offY)
			}
			if g.Precise != tc.precise {
				t.Errorf("precise = %v, expected %v", g.Precise, tc.precise)
			}
			if len(g.Segments) != tc.segments {
				t.Errorf("segments = %d, expected %d", len(g.Segments), tc.segments)
			}
		})
	}
}

func TestSegmentsInsideBoundingBox(t *testing.T) {
	// Segments stay within the sprite vertically and within the obstacle's
	// X extent, so every part of a segment can be reached by the X test.
	for _, v := range AllVariants() {
		o := Obstacle{Variant: v}
		outer := ObstacleBounds(o)
		for i, seg := range SegmentBounds(o) {
			if seg.MaxY > BaseHeight*v.Geometry().Scale/2+1 || seg.MinY < -BaseHeight*v.Geometry().Scale/2-1 {
				t.Errorf("%s segment %d extends past sprite: %+v", v.Name(), i, seg)
			}
			if seg.MinX < outer.MinX-eps || seg.MaxX > outer.MaxX+eps {
				t.Errorf("%s segment %d x=[%.2f, %.2f] outside x=[%.2f, %.2f]",
					v.Name(), i, seg.MinX, seg.MaxX, outer.MinX, outer.MaxX)
			}
		}
	}
}
