package flora

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// heading returns the unit vector pointing at the given angle in radians.
func heading(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Range is a general-purpose min/max range. Used by the sparkle system and
// the stochastic tree build.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor linearly interpolates each channel of a and b by t.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothToward moves current toward target by the given exponential rate.
// The result never overshoots target.
func smoothToward(current, target, rate float64) float64 {
	return current + (target-current)*rate
}

// toRGBA converts to a premultiplied 8-bit color for submission to ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// rgb builds an opaque Color from 8-bit components.
func rgb(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Watercolor palette. Soft blue petals, muted green leaves, a dark plum
// background.
var (
	// BackgroundColor fills the screen behind the scene layer.
	BackgroundColor = rgb(15, 10, 20)
	// BranchColor strokes the woody parts of the plant.
	BranchColor = rgb(80, 60, 40)

	// FlowerColorLow is the muted blue-grey shadow tone of the petals.
	FlowerColorLow = rgb(150, 170, 200)
	// FlowerColorMid is the core petal blue.
	FlowerColorMid = rgb(100, 130, 220)
	// FlowerColorHigh is the lighter edge tone layered on open blooms.
	FlowerColorHigh = rgb(200, 220, 255)
	// FlowerColorCenter is the small solid disk at the heart of a flower.
	FlowerColorCenter = rgb(255, 255, 200)

	// LeafColorFurled is the dark desaturated green of a closed leaf.
	LeafColorFurled = rgb(40, 60, 45)
	// LeafColorOpen is the lighter green a leaf blends toward as it unfurls.
	LeafColorOpen = rgb(90, 130, 95)

	// SparkleColor tints the particles emitted by blooming flowers.
	SparkleColor = rgb(240, 245, 255)
)
