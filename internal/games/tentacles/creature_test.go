package tentacles

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-tentacles/internal/config"
	"github.com/vovakirdan/tui-tentacles/internal/core"
)

var testArena = core.V(640, 384)

func testAutopilot() config.AutopilotConfig {
	return config.AutopilotConfig{Step: 0.01, AmplitudeX: 0.3, AmplitudeY: 0.3}
}

func TestCreaturePointerSmoothing(t *testing.T) {
	c := NewCreature(core.V(0, 0), 15)
	c.SetPointer(core.V(100, 50))

	c.Advance(testArena, testAutopilot(), 0.01)
	if !near(c.Pos, core.V(10, 5)) {
		t.Errorf("Pos after one tick = %v, expected (10, 5)", c.Pos)
	}

	c.Advance(testArena, testAutopilot(), 0.01)
	if !near(c.Pos, core.V(19, 9.5)) {
		t.Errorf("Pos after two ticks = %v, expected (19, 9.5)", c.Pos)
	}
	if c.clock != 0 {
		t.Errorf("autopilot clock advanced in pointer mode: %f", c.clock)
	}
}

func TestCreatureAutopilot(t *testing.T) {
	ap := testAutopilot()
	center := testArena.Scale(0.5)
	c := NewCreature(center, 15)

	if !c.Autopilot() {
		t.Fatal("new creature should start on autopilot")
	}

	c.Advance(testArena, ap, 0.01)

	goal := autopilotPoint(testArena, ap, 0.01)
	want := center.Add(goal.Sub(center).Scale(0.1))
	if !near(c.Pos, want) {
		t.Errorf("Pos = %v, expected %v", c.Pos, want)
	}
	if math.Abs(c.clock-0.01) > 1e-12 {
		t.Errorf("clock = %f, expected 0.01", c.clock)
	}
}

func TestCreatureClearPointer(t *testing.T) {
	c := NewCreature(core.V(100, 100), 15)
	c.SetPointer(core.V(300, 300))
	if p, ok := c.Pointer(); !ok || p != core.V(300, 300) {
		t.Fatalf("Pointer() = %v, %v; expected (300, 300), true", p, ok)
	}

	c.ClearPointer()
	if _, ok := c.Pointer(); ok {
		t.Error("pointer should be absent after ClearPointer")
	}
	if c.Target(testArena, testAutopilot()) == core.V(300, 300) {
		t.Error("target should come from the autopilot curve, not the stale pointer")
	}
}

func TestAutopilotFigureEight(t *testing.T) {
	ap := testAutopilot()
	center := testArena.Scale(0.5)

	if p := autopilotPoint(testArena, ap, 0); !near(p, center) {
		t.Errorf("curve at t=0 = %v, expected center %v", p, center)
	}

	p := autopilotPoint(testArena, ap, math.Pi/2)
	want := core.V(center.X+0.3*testArena.X, center.Y)
	if !near(p, want) {
		t.Errorf("curve at t=pi/2 = %v, expected %v", p, want)
	}

	// Closed: one full period returns to the start
	if p := autopilotPoint(testArena, ap, 2*math.Pi); !near(p, center) {
		t.Errorf("curve at t=2pi = %v, expected center", p)
	}
}
