package flora

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spawn parameter ranges for sparkles.
var (
	sparkleSpeed = Range{0.8, 2.5}
	sparkleLife  = Range{0.6, 1.2} // seconds
	sparkleSize  = Range{1, 3}
)

// sparkleDrag is the per-tick velocity retention factor.
const sparkleDrag = 0.93

// sparkle holds per-particle simulation state. Unexported; managed by
// Sparkles.
type sparkle struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64 // initial lifetime, fixed at spawn
	size    float64
	fade    *gween.Tween // 1 → 0 linearly over maxLife
	fadeVal float64      // current fade factor, drives size and alpha
}

// Sparkles owns and animates the short-lived particles emitted by blooming
// flowers. Particles are the only entities created and destroyed while the
// scene runs; a particle is dropped exactly on the tick its life reaches
// zero, via swap-remove.
type Sparkles struct {
	particles []sparkle
	rng       *rand.Rand
	dt        float64
}

// NewSparkles creates an empty particle collection paced at the given tick
// rate, drawing spawn randomness from rng.
func NewSparkles(tickRate int, rng *rand.Rand) *Sparkles {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Sparkles{
		rng: rng,
		dt:  1.0 / float64(tickRate),
	}
}

// Spawn adds one sparkle at pos with a random direction, speed, lifetime,
// and size.
func (s *Sparkles) Spawn(pos Vec2) {
	angle := s.rng.Float64() * 2 * math.Pi
	speed := sparkleSpeed.Random(s.rng)
	life := sparkleLife.Random(s.rng)
	s.particles = append(s.particles, sparkle{
		x:       pos.X,
		y:       pos.Y,
		vx:      math.Cos(angle) * speed,
		vy:      math.Sin(angle) * speed,
		life:    life,
		maxLife: life,
		size:    sparkleSize.Random(s.rng),
		fade:    gween.New(1, 0, float32(life), ease.Linear),
		fadeVal: 1,
	})
}

// Update advances every particle by one tick and swap-removes the expired
// ones.
func (s *Sparkles) Update() {
	i := 0
	for i < len(s.particles) {
		p := &s.particles[i]

		p.x += p.vx
		p.y += p.vy
		p.vx *= sparkleDrag
		p.vy *= sparkleDrag
		p.life -= s.dt

		fade, _ := p.fade.Update(float32(s.dt))
		p.fadeVal = float64(fade)

		if p.life <= 0 {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
			continue
		}
		i++
	}
}

// Draw renders every alive particle. Displayed size and opacity both scale
// with the remaining life fraction.
func (s *Sparkles) Draw(dst Surface) {
	for i := range s.particles {
		p := &s.particles[i]
		c := SparkleColor
		c.A = p.fadeVal
		dst.Circle(Vec2{p.x, p.y}, p.size*p.fadeVal, c)
	}
}

// Count returns the number of alive particles.
func (s *Sparkles) Count() int {
	return len(s.particles)
}
