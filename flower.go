package flora

import (
	"math"
	"math/rand/v2"
)

const (
	// bloomRate is the exponential rate for both opening and closing.
	bloomRate = 0.1
	// flowerBranchMin gates blooming to near-mature branches.
	flowerBranchMin = 0.7
	// flowerDrawMin is the bloom below which a flower is not rendered.
	flowerDrawMin = 0.05
	// flowerHighlightMin is the bloom above which the lighter highlight
	// disks are layered onto the petals.
	flowerHighlightMin = 0.3

	// sparkleBloomMin and sparkleRiseMin define the edge trigger: sparkles
	// are emitted only when bloom is past sparkleBloomMin AND rose by more
	// than sparkleRiseMin since the previous tick. Sustained bloom without
	// a fresh rise emits nothing.
	sparkleBloomMin = 0.5
	sparkleRiseMin  = 0.05

	// flowerSpin is the rotation accumulated per tick per unit of treble,
	// in radians.
	flowerSpin = 20 * math.Pi / 180
	// highlightNudge is the angular offset of a petal's highlight disk.
	highlightNudge = 10 * math.Pi / 180

	petalAlpha     = 150.0 / 255
	highlightAlpha = 100.0 / 255
)

// Flower is a bloom instance attached to a branch by arena index. The petal
// count, size, and position are fixed at build time; Bloom and Rotation
// animate.
type Flower struct {
	branch int32
	// T is the fractional position along the owning branch.
	T float64
	// Size is the fully bloomed radius scale in pixels.
	Size float64
	// Petals is the fixed petal count, 6–8.
	Petals int

	// Bloom is the normalized [0, 1] open progress.
	Bloom float64
	// Rotation accumulates with treble, spinning the petal ring.
	Rotation float64

	lastBloom float64
}

// worldPos returns the flower's position on the owning branch at its current
// growth.
func (f *Flower) worldPos(b *Branch) Vec2 {
	return b.Start.Add(b.End().Sub(b.Start).Scale(f.T))
}

// update advances bloom toward the treble-driven target (gated on the owning
// branch being near-mature), fires the sparkle edge trigger, and spins the
// petal ring.
func (f *Flower) update(levels Levels, b *Branch, sp *Sparkles, rng *rand.Rand) {
	if b.Growth > flowerBranchMin {
		target := clamp01(levels.Treble * 1.5)
		f.Bloom = smoothToward(f.Bloom, target, bloomRate)
	} else {
		f.Bloom = smoothToward(f.Bloom, 0, bloomRate)
	}

	f.maybeEmit(f.worldPos(b), sp, rng)
	f.lastBloom = f.Bloom

	f.Rotation += levels.Treble * flowerSpin
}

// maybeEmit spawns 1–3 sparkles at pos when the current bloom qualifies as a
// rising edge over the previous tick's bloom. Returns the number spawned.
func (f *Flower) maybeEmit(pos Vec2, sp *Sparkles, rng *rand.Rand) int {
	if f.Bloom <= sparkleBloomMin || f.Bloom-f.lastBloom <= sparkleRiseMin {
		return 0
	}
	n := 1 + rng.IntN(3)
	for i := 0; i < n; i++ {
		sp.Spawn(pos)
	}
	return n
}

// draw renders the petal ring as layered translucent disks for a soft
// watercolor look, then the solid center.
func (f *Flower) draw(dst Surface, b *Branch) {
	if f.Bloom <= flowerDrawMin {
		return
	}

	pos := f.worldPos(b)
	size := f.Size * f.Bloom

	base := FlowerColorMid
	base.A = petalAlpha
	highlight := FlowerColorHigh
	highlight.A = highlightAlpha

	for i := 0; i < f.Petals; i++ {
		angle := f.Rotation + float64(i)*(2*math.Pi/float64(f.Petals))
		petal := pos.Add(heading(angle).Scale(size * 0.4))
		dst.Circle(petal, size*0.5, base)

		if f.Bloom > flowerHighlightMin {
			offset := heading(angle + highlightNudge).Scale(size * 0.1)
			dst.Circle(petal.Add(offset), size*0.3, highlight)
		}
	}

	dst.Circle(pos, size*0.15, FlowerColorCenter)
}
