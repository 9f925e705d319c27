package tentacles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-tentacles/internal/config"
	"github.com/vovakirdan/tui-tentacles/internal/core"
)

// particleDamping is the per-tick velocity multiplier.
const particleDamping = 0.98

// Particle is a short-lived spark. Life counts down by one per tick.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	MaxLife int
	Size    float64
}

// Fade returns Life/MaxLife, the factor applied to both alpha and radius.
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// ParticleSystem owns every live particle.
type ParticleSystem struct {
	cfg       config.ParticleConfig
	rng       *rand.Rand
	particles []Particle
	ovrIdx    int // circular overwrite index when full
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]Particle, 0, max(cfg.Burst, 1)*4),
	}
}

// Burst spawns n particles at pos flying outward in random directions.
func (ps *ParticleSystem) Burst(pos core.Vec, n int) {
	for i := 0; i < n; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.cfg.MinSpeed + ps.rng.Float64()*(ps.cfg.MaxSpeed-ps.cfg.MinSpeed)
		life := ps.cfg.MinLife
		if span := ps.cfg.MaxLife - ps.cfg.MinLife; span > 0 {
			life += ps.rng.Intn(span + 1)
		}
		ps.add(Particle{
			Pos:     pos,
			Vel:     core.FromAngle(angle, speed),
			Life:    life,
			MaxLife: life,
			Size:    ps.cfg.MinSize + ps.rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
		})
	}
}

func (ps *ParticleSystem) add(p Particle) {
	if ps.cfg.MaxLive <= 0 || len(ps.particles) < ps.cfg.MaxLive {
		ps.particles = append(ps.particles, p)
		return
	}
	if ps.ovrIdx >= len(ps.particles) {
		ps.ovrIdx = 0
	}
	ps.particles[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update moves, damps and ages every particle, then drops the dead ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(particleDamping)
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	// Zero the tail so dropped particles don't linger in the backing array.
	for i := len(alive); i < len(ps.particles); i++ {
		ps.particles[i] = Particle{}
	}
	ps.particles = alive
	if ps.ovrIdx > len(ps.particles) {
		ps.ovrIdx = 0
	}
}

// Particles returns the live particles. Callers must not modify the slice.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
	ps.ovrIdx = 0
}
