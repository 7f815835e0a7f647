package flora

import "math/rand/v2"

// shakeScale converts the smoothed bass level into the camera shake
// magnitude in pixels.
const shakeScale = 8

// Visualizer runs the per-tick pipeline: read the provider, normalize,
// update the plant and particles, then roll fresh shake offsets. Everything
// is exclusively owned and mutated sequentially within a tick; no locking.
type Visualizer struct {
	provider Provider
	norm     *Normalizer
	plant    *Plant
	sparkles *Sparkles
	rng      *rand.Rand

	levels Levels
	shake  Vec2
}

// NewVisualizer builds the full simulation. The seed drives both the
// one-time tree build and all per-tick randomness (shake jitter, sparkle
// spawns), so a fixed seed and provider reproduce a run exactly.
func NewVisualizer(provider Provider, cfg PlantConfig, tickRate int, seed int64) *Visualizer {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return &Visualizer{
		provider: provider,
		norm:     NewNormalizer(),
		plant:    NewPlant(cfg, rng),
		sparkles: NewSparkles(tickRate, rng),
		rng:      rng,
	}
}

// Update advances one tick. A provider error degrades to a zero-energy
// frame rather than propagating; growth and bloom targets are simply pulled
// toward zero while the simulation keeps running.
func (v *Visualizer) Update() {
	raw, err := v.provider.Levels()
	if err != nil {
		raw = Levels{}
	}
	v.levels = v.norm.Process(raw)

	v.plant.Update(v.levels, v.sparkles)
	v.sparkles.Update()

	mag := v.levels.Bass * shakeScale
	v.shake = Vec2{
		X: (v.rng.Float64()*2 - 1) * mag,
		Y: (v.rng.Float64()*2 - 1) * mag,
	}
}

// Draw issues the scene layer's draw calls: the tree first, then the
// particles above it. The shake offset is not applied here; compositors
// apply it to whatever dst renders into.
func (v *Visualizer) Draw(dst Surface) {
	v.plant.Draw(dst)
	v.sparkles.Draw(dst)
}

// Shake returns this tick's scene layer offset.
func (v *Visualizer) Shake() Vec2 {
	return v.shake
}

// CurrentLevels returns this tick's smoothed, normalized band levels.
func (v *Visualizer) CurrentLevels() Levels {
	return v.levels
}

// Plant returns the growth tree.
func (v *Visualizer) Plant() *Plant {
	return v.plant
}

// Sparkles returns the particle collection.
func (v *Visualizer) Sparkles() *Sparkles {
	return v.sparkles
}
