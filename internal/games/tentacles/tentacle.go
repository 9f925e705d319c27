package tentacles

import (
	"math"

	"github.com/vovakirdan/tui-tentacles/internal/core"
)

const (
	// deltaBias keeps the lead point away from the target when it stands still.
	deltaBias = 5.0
	// leadFactor scales how far behind the target the tip aims.
	leadFactor = 0.8
)

// Tentacle is a chain of segments rooted at a fixed anchor that chases a
// moving target with follow-the-leader inverse kinematics.
type Tentacle struct {
	anchor   core.Vec
	length   float64
	segments []Segment
	seed     float64 // [0,1), varies looks per tentacle

	angle float64 // anchor→target direction from the last update
	delta float64 // target speed + bias from the last update
}

// NewTentacle builds a fully extended chain of count segments, each
// segLength long, starting at anchor and pointing along +X.
func NewTentacle(anchor core.Vec, count int, segLength, seed float64) *Tentacle {
	t := &Tentacle{
		anchor:   anchor,
		segments: make([]Segment, 0, count),
		seed:     seed,
	}
	for i := 0; i < count; i++ {
		if i == 0 {
			t.segments = append(t.segments, newRootSegment(anchor, segLength))
		} else {
			t.segments = append(t.segments, newChildSegment(t.segments[i-1], segLength))
		}
		t.length += t.segments[i].Length()
	}
	return t
}

// Anchor returns the fixed root position.
func (t *Tentacle) Anchor() core.Vec { return t.anchor }

// Length returns the total chain length.
func (t *Tentacle) Length() float64 { return t.length }

// Seed returns the per-tentacle random value in [0,1).
func (t *Tentacle) Seed() float64 { return t.seed }

// Segments exposes the chain in base→tip order. Callers must not modify it.
func (t *Tentacle) Segments() []Segment { return t.segments }

// Update advances the chain one tick toward target, given the previous
// tick's target.
//
// The tip aims at a lead point trailing the target by an amount
// proportional to target speed, and the solve walks tip to base. When the
// anchor is within reach the chain is then re-laid from the anchor using the
// freshly solved angles, so close tentacles stay rooted.
func (t *Tentacle) Update(target, prev core.Vec) {
	n := len(t.segments)
	if n == 0 {
		return
	}

	t.angle = math.Atan2(target.Y-t.anchor.Y, target.X-t.anchor.X)
	t.delta = core.Dist(prev, target) + deltaBias

	lead := target.Sub(core.FromAngle(t.angle, leadFactor*t.delta))

	// A lead point with X exactly 0 is treated as "not computed" and the tip
	// goes to the raw target instead.
	if lead.X != 0 {
		t.segments[n-1].Update(lead)
	} else {
		t.segments[n-1].Update(target)
	}

	for i := n - 2; i >= 0; i-- {
		t.segments[i].Update(t.segments[i+1].Pos)
	}

	if core.Dist(t.anchor, target) <= t.length+core.Dist(prev, target) {
		t.segments[0].Fallback(t.anchor)
		for i := 1; i < n; i++ {
			t.segments[i].Fallback(t.segments[i-1].NextPos)
		}
	}
}

// Tip returns the free end of the chain.
func (t *Tentacle) Tip() core.Vec {
	if len(t.segments) == 0 {
		return t.anchor
	}
	return t.segments[len(t.segments)-1].NextPos
}
