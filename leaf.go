package flora

import "math"

const (
	// leafGrowRate unfurls a leaf toward its target while the owning branch
	// is established enough.
	leafGrowRate = 0.07
	// leafFurlRate retracts a leaf when its branch shrinks back. Faster
	// than leafGrowRate so the collapse reads as snappy.
	leafFurlRate = 0.12
	// leafBranchMin is the owning-branch growth below which a leaf furls.
	leafBranchMin = 0.4
	// leafDrawMin is the growth below which a leaf is omitted entirely.
	leafDrawMin = 0.05
	// leafSegments is the polyline resolution of each side of the leaf.
	leafSegments = 8
)

// Leaf is a foliage instance attached to a branch by arena index. Shape
// parameters are fixed at build time; only Growth animates.
type Leaf struct {
	branch int32
	// T is the fractional position along the owning branch, 0 at the base.
	T float64
	// AngleOffset tilts the leaf axis away from the branch direction.
	AngleOffset float64
	// Length and Width are the fully unfurled dimensions in pixels.
	Length, Width float64
	// Curve scales the lateral bulge of the two mirrored sides.
	Curve float64

	// Growth is the normalized [0, 1] unfurl progress.
	Growth float64
}

// update advances the unfurl state. Leaves only open while the owning branch
// has real presence; otherwise they furl back regardless of the audio.
func (l *Leaf) update(levels Levels, branchGrowth float64) {
	if branchGrowth > leafBranchMin {
		target := clamp01(levels.Mids * 1.5)
		l.Growth = smoothToward(l.Growth, target, leafGrowRate)
	} else {
		l.Growth = smoothToward(l.Growth, 0, leafFurlRate)
	}
}

// base returns the leaf's anchor on the owning branch at its current growth.
func (l *Leaf) base(b *Branch) Vec2 {
	return b.Start.Add(b.End().Sub(b.Start).Scale(l.T))
}

// draw fills the leaf polygon: two mirrored polylines around the leaf axis,
// bulging at the middle and tapering to the tip, blended between the furled
// and open tones by growth. buf is a scratch slice reused across leaves; the
// (possibly grown) buffer is returned for the next call.
func (l *Leaf) draw(dst Surface, b *Branch, buf []Vec2) []Vec2 {
	if l.Growth <= leafDrawMin {
		return buf
	}

	base := l.base(b)
	axis := heading(b.Angle + l.AngleOffset)
	normal := Vec2{-axis.Y, axis.X}
	tip := base.Add(axis.Scale(l.Length * l.Growth))

	buf = buf[:0]
	buf = append(buf, base)
	for i := 1; i <= leafSegments; i++ {
		t := float64(i) / leafSegments
		along := axis.Scale(t * l.Length * l.Growth)
		off := math.Sin(t*math.Pi) * l.Width * l.Growth * l.Curve
		buf = append(buf, base.Add(along).Add(normal.Scale(off)))
	}
	buf = append(buf, tip)
	for i := leafSegments - 1; i >= 1; i-- {
		t := float64(i) / leafSegments
		along := axis.Scale(t * l.Length * l.Growth)
		off := math.Sin(t*math.Pi) * l.Width * l.Growth * l.Curve
		buf = append(buf, base.Add(along).Add(normal.Scale(-off)))
	}

	fill := lerpColor(LeafColorFurled, LeafColorOpen, l.Growth)
	dst.Polygon(buf, fill)

	// Central vein, a darker shade of the fill.
	vein := Color{fill.R * 0.7, fill.G * 0.7, fill.B * 0.7, 1}
	dst.Line(base, tip, 1, vein)
	return buf
}
