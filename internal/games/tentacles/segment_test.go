package tentacles

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-tentacles/internal/core"
)

const eps = 1e-9

func near(a, b core.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

// checkSegmentInvariant verifies NextPos == Pos + length·(cos, sin).
func checkSegmentInvariant(t *testing.T, s Segment) {
	t.Helper()
	want := s.Pos.Add(core.FromAngle(s.Angle, s.Length()))
	if !near(s.NextPos, want) {
		t.Errorf("NextPos = %v, expected %v from Pos/Angle/Length", s.NextPos, want)
	}
}

func TestSegmentUpdateReachesTarget(t *testing.T) {
	tests := []struct {
		name   string
		start  core.Vec
		target core.Vec
	}{
		{"3-4-5 triangle", core.V(0, 0), core.V(30, 40)},
		{"behind", core.V(50, 50), core.V(-20, 50)},
		{"straight up", core.V(0, 0), core.V(0, -100)},
		{"closer than length", core.V(0, 0), core.V(2, 1)},
		{"on top of tail", core.V(5, 5), core.V(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRootSegment(tc.start, 10)
			s.Update(tc.target)

			if d := core.Dist(s.Pos, tc.target); math.Abs(d-10) > 1e-6 {
				t.Errorf("distance from Pos to target = %f, expected 10", d)
			}
			if !near(s.NextPos, tc.target) {
				t.Errorf("NextPos = %v, expected target %v", s.NextPos, tc.target)
			}
			checkSegmentInvariant(t, s)
		})
	}
}

func TestSegmentUpdateGeometry(t *testing.T) {
	s := newRootSegment(core.V(0, 0), 10)
	s.Update(core.V(30, 40))

	if math.Abs(s.Angle-math.Atan2(40, 30)) > eps {
		t.Errorf("Angle = %f, expected atan2(40, 30)", s.Angle)
	}
	if !near(s.Pos, core.V(24, 32)) {
		t.Errorf("Pos = %v, expected (24, 32)", s.Pos)
	}
}

func TestSegmentFallbackKeepsAngle(t *testing.T) {
	s := newRootSegment(core.V(0, 0), 10)
	s.Update(core.V(0, 50))
	angle := s.Angle

	s.Fallback(core.V(1, 1))

	if s.Pos != core.V(1, 1) {
		t.Errorf("Pos = %v, expected (1, 1)", s.Pos)
	}
	if s.Angle != angle {
		t.Errorf("Fallback changed Angle from %f to %f", angle, s.Angle)
	}
	if !near(s.NextPos, core.V(1, 11)) {
		t.Errorf("NextPos = %v, expected (1, 11)", s.NextPos)
	}
	checkSegmentInvariant(t, s)
}

func TestSegmentConstruction(t *testing.T) {
	root := newRootSegment(core.V(3, 4), 6)
	if !root.IsRoot {
		t.Error("root segment should be flagged IsRoot")
	}
	if root.Pos != core.V(3, 4) || root.Angle != 0 {
		t.Errorf("root = %+v, expected Pos (3, 4) and angle 0", root)
	}
	if root.NextPos != core.V(9, 4) {
		t.Errorf("root NextPos = %v, expected (9, 4)", root.NextPos)
	}

	child := newChildSegment(root, 2)
	if child.IsRoot {
		t.Error("child segment should not be flagged IsRoot")
	}
	if child.Pos != root.NextPos {
		t.Errorf("child Pos = %v, expected predecessor tip %v", child.Pos, root.NextPos)
	}
	if child.Length() != 2 {
		t.Errorf("child Length() = %f, expected 2", child.Length())
	}
}
