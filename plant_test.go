package flora

import (
	"math"
	"testing"
)

func TestBuildDepthAndChildBounds(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		p := NewPlant(DefaultPlantConfig(1920, 1080), testRNG(seed))
		for i := range p.branches {
			b := &p.branches[i]
			if b.Depth > maxDepth {
				t.Fatalf("seed %d: branch %d depth = %d, exceeds %d", seed, i, b.Depth, maxDepth)
			}
			if len(b.children) > 3 {
				t.Fatalf("seed %d: branch %d has %d children, max 3", seed, i, len(b.children))
			}
			for _, ci := range b.children {
				child := &p.branches[ci]
				if child.Depth != b.Depth+1 {
					t.Fatalf("seed %d: child depth = %d, want %d", seed, child.Depth, b.Depth+1)
				}
			}
		}
	}
}

func TestBuildChildrenAnchoredAtFullEnd(t *testing.T) {
	p := NewPlant(DefaultPlantConfig(800, 600), testRNG(5))
	for i := range p.branches {
		b := &p.branches[i]
		end := b.fullEnd()
		for _, ci := range b.children {
			child := &p.branches[ci]
			assertNear(t, "child start X", child.Start.X, end.X)
			assertNear(t, "child start Y", child.Start.Y, end.Y)
		}
	}
}

func TestBuildFoliageDepthGates(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		p := NewPlant(DefaultPlantConfig(1920, 1080), testRNG(seed))
		for i := range p.flowers {
			d := p.branches[p.flowers[i].branch].Depth
			if d < flowerMinDepth {
				t.Fatalf("seed %d: flower on depth-%d branch, min %d", seed, d, flowerMinDepth)
			}
		}
		for i := range p.leaves {
			d := p.branches[p.leaves[i].branch].Depth
			if d < leafMinDepth || d > leafMaxDepth {
				t.Fatalf("seed %d: leaf on depth-%d branch, want %d..%d", seed, d, leafMinDepth, leafMaxDepth)
			}
		}
	}
}

func TestBuildThicknessFloor(t *testing.T) {
	cfg := DefaultPlantConfig(1920, 1080)
	cfg.Thickness = 1
	p := NewPlant(cfg, testRNG(2))
	for i := range p.branches {
		if p.branches[i].Thickness < 1 {
			t.Fatalf("branch %d thickness = %f, floor is 1", i, p.branches[i].Thickness)
		}
	}
}

func TestGrowthConvergenceClosedForm(t *testing.T) {
	// With constant target T and rate k, growth after n ticks is
	// T - (T - g0)(1-k)^n. Mids of 0.5 gives T = 0.6.
	b := Branch{MaxLength: 100}
	levels := Levels{Mids: 0.5}
	const target = 0.6
	prev := 0.0
	for n := 1; n <= 200; n++ {
		b.update(levels)
		want := target - target*math.Pow(1-growthRate, float64(n))
		assertNear(t, "growth", b.Growth, want)
		if b.Growth < prev {
			t.Fatalf("growth not monotonic at tick %d", n)
		}
		if b.Growth > target {
			t.Fatalf("growth overshot target at tick %d: %f", n, b.Growth)
		}
		prev = b.Growth
	}
}

func TestGrowthTargetClamped(t *testing.T) {
	b := Branch{MaxLength: 100}
	for i := 0; i < 500; i++ {
		b.update(Levels{Mids: 5})
		if b.Growth > 1 {
			t.Fatalf("growth exceeded 1 with oversized mids: %f", b.Growth)
		}
	}
}

func TestPulseDepthScaling(t *testing.T) {
	levels := Levels{Bass: 1}

	shallow := Branch{Depth: 0}
	shallow.update(levels)
	assertNear(t, "depth-0 pulse", shallow.Pulse, 1.4)

	mid := Branch{Depth: 2}
	mid.update(levels)
	assertNear(t, "depth-2 pulse", mid.Pulse, 1.2)

	deep := Branch{Depth: 5}
	deep.update(levels)
	assertNear(t, "depth-5 pulse", deep.Pulse, 1.0)
}

func TestBranchEnd(t *testing.T) {
	b := Branch{Start: Vec2{10, 20}, Angle: 0, MaxLength: 100, Growth: 0.5}
	end := b.End()
	assertNear(t, "end X", end.X, 60)
	assertNear(t, "end Y", end.Y, 20)
}

func TestLineWidthFloor(t *testing.T) {
	b := Branch{Thickness: 25, Growth: 0.001, Pulse: 1}
	assertNear(t, "tiny growth width", b.lineWidth(), 1)

	b.Growth = 1
	assertNear(t, "full growth width", b.lineWidth(), 25)

	b.Pulse = 1.4
	assertNear(t, "pulsed width", b.lineWidth(), 35)
}

// twoBranchPlant builds a minimal hand-assembled arena: a root with one
// child, plus a leaf and flower on the root.
func twoBranchPlant() *Plant {
	p := &Plant{rng: testRNG(9)}
	p.branches = []Branch{
		{Angle: -math.Pi / 2, MaxLength: 100, Thickness: 10, Pulse: 1, children: []int32{1}, leaves: []int32{0}, flowers: []int32{0}},
		{Start: Vec2{5, 5}, Angle: 0, MaxLength: 50, Thickness: 7, Depth: 1, Pulse: 1},
	}
	p.leaves = []Leaf{{branch: 0, T: 0.5, Length: 40, Width: 10, Curve: 0.5}}
	p.flowers = []Flower{{branch: 0, T: 0.8, Size: 20, Petals: 6}}
	return p
}

func TestUpdateReanchorsChildren(t *testing.T) {
	p := twoBranchPlant()
	sp := NewSparkles(60, p.rng)
	p.branches[0].Growth = 0.5

	p.Update(Levels{Mids: 1}, sp)

	end := p.branches[0].End()
	child := &p.branches[1]
	assertNear(t, "child start X", child.Start.X, end.X)
	assertNear(t, "child start Y", child.Start.Y, end.Y)

	// Growing further moves the anchor again.
	p.Update(Levels{Mids: 1}, sp)
	if p.branches[1].Start.Y == end.Y {
		t.Error("child anchor did not follow the growing parent end")
	}
}

func TestUpdateStarvesChildrenBelowThreshold(t *testing.T) {
	p := twoBranchPlant()
	sp := NewSparkles(60, p.rng)
	p.branches[0].Growth = 0.02
	p.branches[1].Growth = 0.3

	p.Update(Levels{}, sp)

	child := &p.branches[1]
	assertNear(t, "starved child growth", child.Growth, 0.3)
	assertNear(t, "starved child start X", child.Start.X, 5)
	assertNear(t, "starved child start Y", child.Start.Y, 5)
}

func TestFoliageUpdatesWhileChildrenStarved(t *testing.T) {
	p := twoBranchPlant()
	sp := NewSparkles(60, p.rng)
	p.branches[0].Growth = 0.02
	p.leaves[0].Growth = 0.5
	p.flowers[0].Bloom = 0.5

	p.Update(Levels{}, sp)

	if p.leaves[0].Growth >= 0.5 {
		t.Error("leaf did not update while subtree was starved")
	}
	if p.flowers[0].Bloom >= 0.5 {
		t.Error("flower did not update while subtree was starved")
	}
}

func TestDrawOrderLeavesChildrenFlowers(t *testing.T) {
	p := twoBranchPlant()
	p.branches[0].Growth = 1
	p.branches[1].Growth = 1
	p.leaves[0].Growth = 1
	p.flowers[0].Bloom = 0.6

	rec := &recordSurface{}
	p.Draw(rec)

	// Expected op stream: root line, leaf polygon (+vein line), child
	// line, then the flower's circles last.
	if len(rec.polys) != 1 {
		t.Fatalf("polygons = %d, want 1 (the leaf)", len(rec.polys))
	}
	if len(rec.circles) == 0 {
		t.Fatal("no flower circles drawn")
	}
	polyAt := -1
	lastLineAt := -1
	firstCircleAt := -1
	for i, op := range rec.ops {
		switch op {
		case "polygon":
			polyAt = i
		case "line":
			lastLineAt = i
		case "circle":
			if firstCircleAt == -1 {
				firstCircleAt = i
			}
		}
	}
	if polyAt > lastLineAt {
		t.Error("leaf polygon drawn after the last branch line")
	}
	if firstCircleAt < lastLineAt {
		t.Error("flower circles drawn before branch geometry finished")
	}
}

func TestDrawSkipsInvisibleSubtree(t *testing.T) {
	p := twoBranchPlant()
	p.branches[0].Growth = 0.005
	p.branches[1].Growth = 1

	rec := &recordSurface{}
	p.Draw(rec)

	if len(rec.ops) != 0 {
		t.Errorf("drew %d ops below the visibility threshold, want 0", len(rec.ops))
	}
}

func TestTreeTopologyNeverRestructures(t *testing.T) {
	p := NewPlant(DefaultPlantConfig(800, 600), testRNG(11))
	sp := NewSparkles(60, testRNG(12))
	branches, leaves, flowers := p.NumBranches(), p.NumLeaves(), p.NumFlowers()

	for i := 0; i < 300; i++ {
		p.Update(Levels{Bass: 1, Mids: 1, Treble: 1}, sp)
	}

	if p.NumBranches() != branches || p.NumLeaves() != leaves || p.NumFlowers() != flowers {
		t.Error("tree structure changed during animation")
	}
}
