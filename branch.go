package flora

import "math"

const (
	// maxDepth bounds the recursion of the stochastic build.
	maxDepth = 7
	// growthRate is the exponential rate at which a branch tracks its
	// audio-driven growth target.
	growthRate = 0.06
	// growthPropagateMin gates descent into children: a branch only drives
	// its subtree once it is visibly present itself.
	growthPropagateMin = 0.05
	// growthDrawMin is the growth below which a branch (and its subtree)
	// is not rendered at all.
	growthDrawMin = 0.01
)

// Branch is one segment of the growth tree. Branches live in the Plant's
// arena and reference their children and attached foliage by index, never by
// pointer.
type Branch struct {
	// Start is the world-space base of the branch. Re-anchored to the
	// parent's current end every tick the parent propagates.
	Start Vec2
	// Angle is the direction of growth in radians.
	Angle float64
	// MaxLength is the fully grown length in pixels.
	MaxLength float64
	// Thickness is the fully grown stroke width in pixels.
	Thickness float64
	// Depth is the distance from the root, 0-based.
	Depth int

	// Growth is the normalized [0, 1] progress driving rendered length,
	// width, and presence. It tracks a per-tick target by exponential
	// smoothing and is never set discontinuously.
	Growth float64
	// Pulse is the bass-driven width multiplier. Shallow branches pulse
	// harder than deep ones.
	Pulse float64

	children []int32
	leaves   []int32
	flowers  []int32
}

// End returns the branch tip at the current growth.
func (b *Branch) End() Vec2 {
	return b.Start.Add(heading(b.Angle).Scale(b.MaxLength * b.Growth))
}

// fullEnd returns where the tip will sit once fully grown. Used only to seed
// children's build-time anchor; the live tip overwrites it from the first
// propagating tick onward.
func (b *Branch) fullEnd() Vec2 {
	return b.Start.Add(heading(b.Angle).Scale(b.MaxLength))
}

// update advances growth toward the mids-driven target and refreshes the
// bass pulse.
func (b *Branch) update(levels Levels) {
	target := clamp01(levels.Mids * 1.2)
	b.Growth = smoothToward(b.Growth, target, growthRate)
	b.Pulse = 1 + levels.Bass*0.1*math.Max(0, float64(4-b.Depth))
}

// lineWidth returns the stroke width for the current growth and pulse,
// floored at one pixel.
func (b *Branch) lineWidth() float64 {
	w := math.Round(b.Thickness * b.Growth * b.Pulse)
	if w < 1 {
		return 1
	}
	return w
}
