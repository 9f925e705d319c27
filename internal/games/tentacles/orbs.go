package tentacles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-tentacles/internal/core"
)

// Orb is a collectible target. A collected orb stays hidden in its slot
// until the slot is refilled by Respawn.
type Orb struct {
	Pos       core.Vec
	Radius    float64
	Phase     float64
	Collected bool
}

// PulseRadius returns the rendered radius, breathing around Radius.
func (o Orb) PulseRadius() float64 {
	return o.Radius * (1 + 0.25*math.Sin(o.Phase))
}

// Bounds is the rectangle orbs may be placed in, in world units.
type Bounds struct {
	Min, Max core.Vec
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p core.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// OrbField holds a fixed number of orb slots.
type OrbField struct {
	orbs       []Orb
	rng        *rand.Rand
	bounds     Bounds
	pulseSpeed float64
}

// NewOrbField fills count slots with fresh orbs of the given radius.
func NewOrbField(count int, radius, pulseSpeed float64, bounds Bounds, rng *rand.Rand) *OrbField {
	f := &OrbField{
		orbs:       make([]Orb, count),
		rng:        rng,
		bounds:     bounds,
		pulseSpeed: pulseSpeed,
	}
	for i := range f.orbs {
		f.Respawn(i, radius)
	}
	return f
}

// Orbs returns the orb slots. Callers must not modify the slice.
func (f *OrbField) Orbs() []Orb {
	return f.orbs
}

// Len returns the number of slots, which never changes.
func (f *OrbField) Len() int {
	return len(f.orbs)
}

// Pulse advances every orb's pulse phase by one tick.
func (f *OrbField) Pulse() {
	for i := range f.orbs {
		f.orbs[i].Phase += f.pulseSpeed
	}
}

// Collect marks slot i as collected. It returns false if the orb was
// already collected, so a single orb never scores twice.
func (f *OrbField) Collect(i int) bool {
	if i < 0 || i >= len(f.orbs) || f.orbs[i].Collected {
		return false
	}
	f.orbs[i].Collected = true
	return true
}

// Respawn replaces slot i with a fresh, uncollected orb at a random position.
func (f *OrbField) Respawn(i int, radius float64) {
	if i < 0 || i >= len(f.orbs) {
		return
	}
	f.orbs[i] = Orb{
		Pos:    f.randomPos(),
		Radius: radius,
		Phase:  f.rng.Float64() * 2 * math.Pi,
	}
}

// Relocate changes the placement bounds and moves orbs that fall outside
// them to new random positions.
func (f *OrbField) Relocate(bounds Bounds) {
	f.bounds = bounds
	for i := range f.orbs {
		if !bounds.Contains(f.orbs[i].Pos) {
			f.orbs[i].Pos = f.randomPos()
		}
	}
}

func (f *OrbField) randomPos() core.Vec {
	w := f.bounds.Max.X - f.bounds.Min.X
	h := f.bounds.Max.Y - f.bounds.Min.Y
	if w <= 0 || h <= 0 {
		return f.bounds.Min.Add(f.bounds.Max).Scale(0.5)
	}
	return core.V(
		f.bounds.Min.X+f.rng.Float64()*w,
		f.bounds.Min.Y+f.rng.Float64()*h,
	)
}
