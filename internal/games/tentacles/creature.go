package tentacles

import (
	"math"

	"github.com/vovakirdan/tui-tentacles/internal/config"
	"github.com/vovakirdan/tui-tentacles/internal/core"
)

// smoothing is the divisor of the per-tick approach toward the target.
// Gameplay feel and collision timing depend on it; it is not configurable.
const smoothing = 10.0

// Creature is the player core. Tentacles chase its position, not the pointer.
type Creature struct {
	Pos          core.Vec
	Radius       float64
	NearBoundary bool

	pointer    core.Vec
	hasPointer bool
	clock      float64 // autopilot parameter, grows without bound
}

// NewCreature places a creature at pos.
func NewCreature(pos core.Vec, radius float64) *Creature {
	return &Creature{Pos: pos, Radius: radius}
}

// SetPointer records the latest pointer position in world units.
func (c *Creature) SetPointer(p core.Vec) {
	c.pointer = p
	c.hasPointer = true
}

// ClearPointer drops pointer control; the next tick follows the autopilot.
func (c *Creature) ClearPointer() {
	c.hasPointer = false
}

// Pointer returns the pointer position and whether one is live.
func (c *Creature) Pointer() (core.Vec, bool) {
	return c.pointer, c.hasPointer
}

// Autopilot reports whether the creature is currently self-driven.
func (c *Creature) Autopilot() bool {
	return !c.hasPointer
}

// Target returns the point the creature heads for this tick.
func (c *Creature) Target(arena core.Vec, ap config.AutopilotConfig) core.Vec {
	if c.hasPointer {
		return c.pointer
	}
	return autopilotPoint(arena, ap, c.clock)
}

// Advance moves the creature a tenth of the way toward its target. In
// autopilot mode the curve clock advances by step first.
func (c *Creature) Advance(arena core.Vec, ap config.AutopilotConfig, step float64) {
	if !c.hasPointer {
		c.clock += step
	}
	err := c.Target(arena, ap).Sub(c.Pos)
	c.Pos = c.Pos.Add(err.Scale(1 / smoothing))
}

// autopilotPoint evaluates the figure-eight locus centered in the arena.
func autopilotPoint(arena core.Vec, ap config.AutopilotConfig, t float64) core.Vec {
	center := arena.Scale(0.5)
	return core.V(
		center.X+arena.X*ap.AmplitudeX*math.Sin(t),
		center.Y+arena.Y*ap.AmplitudeY*math.Sin(2*t),
	)
}
