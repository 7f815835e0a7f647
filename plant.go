package flora

import (
	"math"
	"math/rand/v2"
)

// Build-time attachment parameters.
const (
	flowerMinDepth = 4
	flowerChance   = 0.7
	leafMinDepth   = 2
	leafMaxDepth   = 5
	leafChance     = 0.8
	childMaxDepth  = 6
)

var (
	childSpread    = Range{-35 * math.Pi / 180, 35 * math.Pi / 180}
	childLengthMul = Range{0.6, 0.9}
	leafJitter     = Range{-10 * math.Pi / 180, 10 * math.Pi / 180}
	leafPosition   = Range{0.2, 0.8}
	leafLength     = Range{35, 70}
	leafWidth      = Range{8, 18}
	leafCurve      = Range{0.3, 0.7}
	flowerPosition = Range{0.5, 1.0}
	flowerSize     = Range{15, 28}
)

// leafBaseOffset is the leaf axis tilt away from the branch, mirrored to
// either side at random.
const leafBaseOffset = 55 * math.Pi / 180

// PlantConfig seeds the stochastic tree build.
type PlantConfig struct {
	// Origin is the world-space base of the trunk.
	Origin Vec2
	// Angle is the trunk direction in radians (-π/2 grows straight up).
	Angle float64
	// MaxLength is the fully grown trunk length in pixels.
	MaxLength float64
	// Thickness is the trunk stroke width in pixels.
	Thickness float64
}

// DefaultPlantConfig roots the plant at the bottom center of a viewport of
// the given size, growing upward.
func DefaultPlantConfig(width, height int) PlantConfig {
	return PlantConfig{
		Origin:    Vec2{float64(width) / 2, float64(height) + 20},
		Angle:     -math.Pi / 2,
		MaxLength: float64(height) / 3.5,
		Thickness: 25,
	}
}

// Plant is the arena-owned growth tree. The topology is generated exactly
// once at build time and never restructured; only growth, bloom, position,
// and pulse state animate afterwards. Branches, leaves, and flowers live in
// homogeneous slices and reference each other by index.
type Plant struct {
	branches []Branch
	leaves   []Leaf
	flowers  []Flower

	rng     *rand.Rand
	leafBuf []Vec2 // scratch for leaf polygons, reused across draws
}

// NewPlant builds a plant from cfg, drawing all stochastic structure from
// rng. The same seed always yields the same tree.
func NewPlant(cfg PlantConfig, rng *rand.Rand) *Plant {
	p := &Plant{rng: rng}
	p.build(cfg.Origin, cfg.Angle, cfg.MaxLength, cfg.Thickness, 0)
	return p
}

// build appends one branch (plus its foliage and subtree) to the arena and
// returns its index. Children are anchored at this branch's fully grown tip;
// the live tip re-anchors them every propagating tick after that.
func (p *Plant) build(start Vec2, angle, maxLength, thickness float64, depth int) int32 {
	idx := int32(len(p.branches))
	p.branches = append(p.branches, Branch{
		Start:     start,
		Angle:     angle,
		MaxLength: maxLength,
		Thickness: thickness,
		Depth:     depth,
		Pulse:     1,
	})
	if depth >= maxDepth {
		return idx
	}

	end := p.branches[idx].fullEnd()

	// Deeper branches carry flowers; mid-level branches carry leaves.
	if depth >= flowerMinDepth && p.rng.Float64() < flowerChance {
		fi := int32(len(p.flowers))
		p.flowers = append(p.flowers, Flower{
			branch:   idx,
			T:        flowerPosition.Random(p.rng),
			Size:     flowerSize.Random(p.rng),
			Rotation: p.rng.Float64() * 2 * math.Pi,
			Petals:   6 + p.rng.IntN(3),
		})
		p.branches[idx].flowers = append(p.branches[idx].flowers, fi)
	}

	if depth >= leafMinDepth && depth <= leafMaxDepth && p.rng.Float64() < leafChance {
		side := leafBaseOffset
		if p.rng.IntN(2) == 0 {
			side = -side
		}
		li := int32(len(p.leaves))
		p.leaves = append(p.leaves, Leaf{
			branch:      idx,
			T:           leafPosition.Random(p.rng),
			AngleOffset: side + leafJitter.Random(p.rng),
			Length:      leafLength.Random(p.rng),
			Width:       leafWidth.Random(p.rng),
			Curve:       leafCurve.Random(p.rng),
		})
		p.branches[idx].leaves = append(p.branches[idx].leaves, li)
	}

	if depth < childMaxDepth {
		n := 1 + p.rng.IntN(3)
		for i := 0; i < n; i++ {
			ci := p.build(
				end,
				angle+childSpread.Random(p.rng),
				maxLength*childLengthMul.Random(p.rng),
				math.Max(1, thickness*0.7),
				depth+1,
			)
			p.branches[idx].children = append(p.branches[idx].children, ci)
		}
	}
	return idx
}

// walk is the single traversal used by both update and draw. enter runs
// before descending and returns whether to descend; exit, if non-nil, runs
// after the subtree, only for branches that were entered.
func (p *Plant) walk(idx int32, enter func(b *Branch) bool, exit func(b *Branch)) {
	b := &p.branches[idx]
	if !enter(b) {
		return
	}
	for _, ci := range b.children {
		p.walk(ci, enter, exit)
	}
	if exit != nil {
		exit(b)
	}
}

// Update advances one simulation tick. Children are re-anchored to their
// parent's current (partially grown) end and descended into only once the
// parent is visibly present; a branch's own leaves and flowers always
// update, so foliage keeps animating even while descendants are starved.
func (p *Plant) Update(levels Levels, sp *Sparkles) {
	p.walk(0, func(b *Branch) bool {
		b.update(levels)
		end := b.End()

		descend := b.Growth > growthPropagateMin
		if descend {
			for _, ci := range b.children {
				p.branches[ci].Start = end
			}
		}

		for _, li := range b.leaves {
			p.leaves[li].update(levels, b.Growth)
		}
		for _, fi := range b.flowers {
			p.flowers[fi].update(levels, b, sp, p.rng)
		}
		return descend
	}, nil)
}

// Draw renders the tree. Paint order within a branch is leaves, then the
// subtree, then flowers, so flowers sit above intervening branch geometry.
func (p *Plant) Draw(dst Surface) {
	p.walk(0, func(b *Branch) bool {
		if b.Growth <= growthDrawMin {
			return false
		}
		dst.Line(b.Start, b.End(), b.lineWidth(), BranchColor)
		for _, li := range b.leaves {
			p.leafBuf = p.leaves[li].draw(dst, b, p.leafBuf)
		}
		return true
	}, func(b *Branch) {
		for _, fi := range b.flowers {
			p.flowers[fi].draw(dst, b)
		}
	})
}

// Root returns the trunk branch.
func (p *Plant) Root() *Branch {
	return &p.branches[0]
}

// NumBranches returns the total branch count.
func (p *Plant) NumBranches() int { return len(p.branches) }

// NumLeaves returns the total leaf count.
func (p *Plant) NumLeaves() int { return len(p.leaves) }

// NumFlowers returns the total flower count.
func (p *Plant) NumFlowers() int { return len(p.flowers) }
