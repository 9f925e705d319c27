package tentacles

import (
	"math"

	"github.com/vovakirdan/tui-tentacles/internal/core"
)

// Segment is one rigid link of a tentacle chain.
// NextPos always equals Pos + length·(cos Angle, sin Angle).
type Segment struct {
	Pos     core.Vec
	NextPos core.Vec
	Angle   float64
	IsRoot  bool

	length float64
}

// newRootSegment builds the base link of a chain, sitting on the anchor.
func newRootSegment(anchor core.Vec, length float64) Segment {
	s := Segment{Pos: anchor, IsRoot: true, length: length}
	s.calculateNext()
	return s
}

// newChildSegment builds a link whose tail sits on the tip of prev.
func newChildSegment(prev Segment, length float64) Segment {
	s := Segment{Pos: prev.NextPos, length: length}
	s.calculateNext()
	return s
}

// Length returns the fixed length of the segment.
func (s *Segment) Length() float64 {
	return s.length
}

// Update points the segment's tip exactly at target, dragging its tail
// along so the length is preserved.
func (s *Segment) Update(target core.Vec) {
	s.Angle = math.Atan2(target.Y-s.Pos.Y, target.X-s.Pos.X)
	s.Pos = target.Sub(core.FromAngle(s.Angle, s.length))
	s.calculateNext()
}

// Fallback forces the tail onto point, keeping the current angle.
func (s *Segment) Fallback(point core.Vec) {
	s.Pos = point
	s.calculateNext()
}

func (s *Segment) calculateNext() {
	s.NextPos = s.Pos.Add(core.FromAngle(s.Angle, s.length))
}
