package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Base sprite dimensions in world units. All obstacle geometry is authored
// relative to these.
const (
	BaseWidth  = 52.0
	BaseHeight = 320.0

	// SegmentYUnit converts a segment's vertical offset factor to world units.
	// Segment offsets are authored against the sprite half-height, horizontal
	// ones against the full BaseWidth.
	SegmentYUnit = 160.0
)

// Segment is a rectangular sub-region of an irregular obstacle. Its
// horizontal extent lies within the variant's bounding width, which is
// tested before any segment.
// Offsets are factors of BaseWidth (x) and SegmentYUnit (y); sizes are
// factors of BaseWidth and BaseHeight.
type Segment struct {
	OffsetX      float64
	OffsetY      float64
	WidthFactor  float64
	HeightFactor float64
}

// Geometry is the immutable collision descriptor of an obstacle variant.
type Geometry struct {
	Scale        float64
	WidthFactor  float64
	HeightFactor float64
	OffsetX      float64 // collision center relative to sprite center, pre-scale
	OffsetY      float64
	Precise      bool      // test Segments instead of the single bounding rect
	Segments     []Segment // ordered; empty for simple variants
}

// Variant is an obstacle kind. The set is closed.
type Variant int

const (
	VariantGreen Variant = iota
	VariantRed
	VariantColorfulGourd3
	VariantColorfulGourd4
	VariantLantern2
	VariantLantern3
	VariantGourd3
	VariantGourd5

	variantCount
)

type variantInfo struct {
	name  string
	title string
	glyph rune
	color core.Color
	geom  Geometry
}

var variants = [variantCount]variantInfo{
	VariantGreen: {
		name: "green", title: "Green Pipe", glyph: '█', color: core.ColorGreen,
		geom: Geometry{Scale: 1.0, WidthFactor: 0.8, HeightFactor: 0.9},
	},
	VariantRed: {
		name: "red", title: "Red Pipe", glyph: '█', color: core.ColorRed,
		geom: Geometry{Scale: 1.0, WidthFactor: 0.8, HeightFactor: 0.9},
	},
	VariantColorfulGourd3: {
		name: "colorful_gourd3", title: "Colorful Gourds (3)", glyph: '●', color: core.ColorOrange,
		geom: Geometry{
			Scale: 0.5, WidthFactor: 0.6, HeightFactor: 0.7, OffsetY: -5, Precise: true,
			Segments: []Segment{
				{0, -0.6, 0.55, 0.3},
				{0, 0, 0.6, 0.3},
				{0, 0.6, 0.55, 0.3},
			},
		},
	},
	VariantColorfulGourd4: {
		name: "colorful_gourd4", title: "Colorful Gourds (4)", glyph: '●', color: core.ColorBrightYellow,
		geom: Geometry{
			Scale: 0.5, WidthFactor: 0.6, HeightFactor: 0.7, OffsetY: -5, Precise: true,
			Segments: []Segment{
				{0, -0.75, 0.5, 0.22},
				{0, -0.25, 0.6, 0.22},
				{0, 0.25, 0.6, 0.22},
				{0, 0.75, 0.5, 0.22},
			},
		},
	},
	VariantLantern2: {
		name: "lantern2", title: "Lanterns (2)", glyph: '◘', color: core.ColorBrightRed,
		geom: Geometry{
			Scale: 0.4, WidthFactor: 0.7, HeightFactor: 0.8, Precise: true,
			Segments: []Segment{
				{-0.1, 0.45, 0.45, 0.4},
				{0.1, -0.45, 0.45, 0.4},
			},
		},
	},
	VariantLantern3: {
		name: "lantern3", title: "Lanterns (3)", glyph: '◘', color: core.ColorRed,
		geom: Geometry{
			Scale: 0.4, WidthFactor: 0.7, HeightFactor: 0.8, Precise: true,
			Segments: []Segment{
				{0, -0.65, 0.7, 0.25},
				{0, 0, 0.7, 0.25},
				{0, 0.65, 0.7, 0.25},
			},
		},
	},
	VariantGourd3: {
		name: "gourd3", title: "Gourds (3)", glyph: '○', color: core.ColorBrown,
		geom: Geometry{
			Scale: 0.5, WidthFactor: 0.6, HeightFactor: 0.8, OffsetY: -3, Precise: true,
			Segments: []Segment{
				{0, -0.6, 0.6, 0.3},
				{0, 0, 0.5, 0.25},
				{0, 0.6, 0.6, 0.3},
			},
		},
	},
	VariantGourd5: {
		name: "gourd5", title: "Gourds (5)", glyph: '○', color: core.ColorYellow,
		geom: Geometry{
			Scale: 0.5, WidthFactor: 0.6, HeightFactor: 0.8, OffsetY: -3, Precise: true,
			Segments: []Segment{
				{0, -0.8, 0.55, 0.16},
				{0, -0.4, 0.45, 0.16},
				{0, 0, 0.55, 0.16},
				{0, 0.4, 0.45, 0.16},
				{0, 0.8, 0.55, 0.16},
			},
		},
	},
}

// AllVariants returns every obstacle variant in declaration order.
func AllVariants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Variant(0); v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// ParseVariant resolves a config name such as "lantern2".
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v := Variant(0); v < variantCount; v++ {
		if variants[v].name == key {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown obstacle variant %q", name)
}

func (v Variant) info() variantInfo {
	if v < 0 || v >= variantCount {
		panic(fmt.Sprintf("flappy: invalid variant %d", int(v)))
	}
	return variants[v]
}

// Geometry returns the variant's collision descriptor.
func (v Variant) Geometry() Geometry { return v.info().geom }

// Name returns the config name.
func (v Variant) Name() string { return v.info().name }

// String returns the display name.
func (v Variant) String() string { return v.info().title }

// Glyph returns the rune used to draw the variant.
func (v Variant) Glyph() rune { return v.info().glyph }

// Color returns the variant's draw color.
func (v Variant) Color() core.Color { return v.info().color }

// Character is a playable bird. The set is closed.
type Character int

const (
	CharacterYellowBird Character = iota
	CharacterRedBird
	CharacterBlueBird
	CharacterWuSaQi
	CharacterJiYi
	CharacterXiaoBa

	characterCount
)

type characterInfo struct {
	name   string
	title  string
	glyph  rune
	color  core.Color
	radius float64
}

var characters = [characterCount]characterInfo{
	CharacterYellowBird: {"yellow_bird", "Yellow Bird", '▶', core.ColorBrightYellow, 12},
	CharacterRedBird:    {"red_bird", "Red Bird", '▶', core.ColorBrightRed, 12},
	CharacterBlueBird:   {"blue_bird", "Blue Bird", '▶', core.ColorBlue, 12},
	CharacterWuSaQi:     {"wusaqi", "WuSaQi", '◆', core.ColorWhite, 10},
	CharacterJiYi:       {"jiyi", "JiYi", '◆', core.ColorBrightCyan, 10},
	CharacterXiaoBa:     {"xiaoba", "XiaoBa", '◆', core.ColorOrange, 10},
}

// AllCharacters returns every character in selection order.
func AllCharacters() []Character {
	out := make([]Character, 0, characterCount)
	for c := Character(0); c < characterCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCharacter resolves a name such as "blue_bird" or "Blue Bird".
func ParseCharacter(name string) (Character, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c := Character(0); c < characterCount; c++ {
		if characters[c].name == key || strings.ToLower(characters[c].title) == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown character %q", name)
}

// Valid reports whether c is a member of the character set.
func (c Character) Valid() bool { return c >= 0 && c < characterCount }

func (c Character) info() characterInfo {
	if !c.Valid() {
		panic(fmt.Sprintf("flappy: invalid character %d", int(c)))
	}
	return characters[c]
}

// Radius returns the collision radius.
func (c Character) Radius() float64 { return c.info().radius }

// Name returns the stable identifier stored in save data.
func (c Character) Name() string { return c.info().name }

// String returns the display name.
func (c Character) String() string { return c.info().title }

// Glyph returns the rune used to draw the character.
func (c Character) Glyph() rune { return c.info().glyph }

// Color returns the character's draw color.
func (c Character) Color() core.Color { return c.info().color }

// Next returns the following character, wrapping around.
func (c Character) Next() Character { return (c + 1) % characterCount }

// Prev returns the preceding character, wrapping around.
func (c Character) Prev() Character { return (c + characterCount - 1) % characterCount }
