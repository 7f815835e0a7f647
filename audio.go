package flora

import "math"

// Levels holds one tick of audio band energy. Raw providers report mean
// spectral magnitude per band; after normalization every field is in [0, 1].
type Levels struct {
	Volume float64
	Bass   float64 // 20–250 Hz
	Mids   float64 // 250–2000 Hz
	Treble float64 // 2000–8000 Hz
}

// Provider supplies one Levels frame per tick. Implementations block at most
// for one bounded audio-frame read. A returned error degrades that tick to a
// zero-energy frame; the simulation keeps running.
type Provider interface {
	Levels() (Levels, error)
}

const (
	// normalizerSeed is the initial peak value. Near zero so the very first
	// frame dominates it, but never zero so raw/peak cannot divide by zero.
	normalizerSeed = 1e-5
	// peakDecay shrinks each band's running peak every tick, letting the
	// dynamic range re-adapt after loud passages.
	peakDecay = 0.999
	// levelRate is the exponential smoothing rate of the output levels.
	levelRate = 0.35
)

// Normalizer converts raw band energies into smoothed levels in [0, 1] using
// a decaying per-band peak tracker. Loud transients raise a band's ceiling;
// quieter audio afterwards is renormalized against the geometrically decaying
// peak. Initialize with NewNormalizer; there is no teardown.
type Normalizer struct {
	peaks  [4]float64
	levels [4]float64
}

// NewNormalizer returns a Normalizer with all peaks seeded near zero.
func NewNormalizer() *Normalizer {
	n := &Normalizer{}
	for i := range n.peaks {
		n.peaks[i] = normalizerSeed
	}
	return n
}

// Process folds one raw frame into the smoothed levels and returns them.
// Non-finite inputs are coerced to 0 before touching the peak trackers, so a
// corrupt frame cannot poison later normalization.
func (n *Normalizer) Process(raw Levels) Levels {
	in := [4]float64{raw.Volume, raw.Bass, raw.Mids, raw.Treble}
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		if v > n.peaks[i] {
			n.peaks[i] = v
		}
		normalized := v / n.peaks[i]
		n.levels[i] = smoothToward(n.levels[i], normalized, levelRate)
		n.peaks[i] *= peakDecay
	}
	return Levels{
		Volume: n.levels[0],
		Bass:   n.levels[1],
		Mids:   n.levels[2],
		Treble: n.levels[3],
	}
}

// Synthetic is a deterministic Provider used when no capture device is
// available. It advances a fixed dt per call rather than reading a wall
// clock, so two instances with the same tick rate produce identical
// sequences. The waveform sweeps each band at a different frequency, with
// magnitudes on the same rough scale as real spectral energy.
type Synthetic struct {
	t  float64
	dt float64
}

// NewSynthetic returns a Synthetic provider paced at the given tick rate.
func NewSynthetic(tickRate int) *Synthetic {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Synthetic{dt: 1.0 / float64(tickRate)}
}

// Levels returns the next frame of the synthetic waveform. It never fails.
func (s *Synthetic) Levels() (Levels, error) {
	t := s.t
	s.t += s.dt
	return Levels{
		Volume: (math.Sin(t*2) + 1) / 2 * 15000,
		Bass:   (math.Sin(t*2+math.Pi) + 1) / 2 * 1e6,
		Mids:   (math.Sin(t*4) + 1) / 2 * 1e5,
		Treble: (math.Sin(t*8) + 1) / 2 * 1e4,
	}, nil
}
