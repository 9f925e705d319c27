// Package tentacles implements the tentacles arcade game.
// The player steers a glowing core, trailed by a swarm of tentacles, to
// collect orbs without touching the arena edges before time runs out.
package tentacles

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tentacles/internal/config"
	"github.com/vovakirdan/tui-tentacles/internal/core"
	"github.com/vovakirdan/tui-tentacles/internal/registry"
)

// World units per terminal cell. Cells are roughly twice as tall as wide.
const (
	CellW = 8.0
	CellH = 16.0
)

// SessionState is the play state of a session.
type SessionState int

const (
	Playing SessionState = iota
	Ended
)

// EndReason records why a session ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndBoundaryHit
	EndTimeExpired
)

// String returns the reason shown to the player.
func (r EndReason) String() string {
	switch r {
	case EndBoundaryHit:
		return "boundary hit"
	case EndTimeExpired:
		return "time expired"
	default:
		return ""
	}
}

// gameConfig is the configuration new games start from, set by the CLI.
var gameConfig = config.DefaultTentaclesConfig()

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.TentaclesConfig) {
	gameConfig = cfg
}

type star struct {
	X, Y   float64 // fraction of the arena
	Bright bool
}

type noopScheduler struct{}

func (noopScheduler) After(time.Duration, func()) {}

// Game implements the tentacles game logic.
type Game struct {
	id    string
	title string
	timed bool

	cfg        config.TentaclesConfig
	runtime    core.RuntimeConfig
	sched      core.Scheduler
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	arena      core.Vec
	creature   *Creature
	lastTarget core.Vec
	tentacles  []*Tentacle
	orbs       *OrbField
	particles  *ParticleSystem
	stars      []star

	state      SessionState
	reason     EndReason
	score      int
	timeLeft   int
	paused     bool
	tickCount  int
	generation int // bumped on Reset; stale deferred callbacks compare against it
}

// New creates a timed game using the current package configuration.
func New() *Game {
	return NewWithConfig(gameConfig, true)
}

// NewEndless creates a game with no countdown.
func NewEndless() *Game {
	return NewWithConfig(gameConfig, false)
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.TentaclesConfig, timed bool) *Game {
	g := &Game{
		id:    "tentacles",
		title: "Tentacles",
		timed: timed && cfg.Session.TimeLimit > 0,
		cfg:   cfg,
	}
	if !timed {
		g.id = "tentacles_endless"
		g.title = "Tentacles (Endless)"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset rebuilds every entity and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.sched = cfg.Scheduler
	if g.sched == nil {
		g.sched = noopScheduler{}
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.generation++

	g.arena = arenaSize(cfg)
	center := g.arena.Scale(0.5)
	g.creature = NewCreature(center, g.cfg.Creature.Radius)
	g.lastTarget = center

	g.spawnTentacles()
	g.orbs = NewOrbField(g.cfg.Orbs.Count, g.cfg.Orbs.Radius, g.cfg.Orbs.PulseSpeed, g.orbBounds(), g.rng)
	g.particles = NewParticleSystem(g.cfg.Particles, g.rng)
	g.spawnStars()

	g.state = Playing
	g.reason = EndNone
	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.timeLeft = -1
	if g.timed {
		g.timeLeft = g.cfg.Session.TimeLimit
		g.scheduleCountdown()
	}
}

func arenaSize(cfg core.RuntimeConfig) core.Vec {
	return core.V(float64(cfg.ScreenW)*CellW, float64(cfg.ScreenH)*CellH)
}

func (g *Game) spawnTentacles() {
	tc := g.cfg.Tentacles
	g.tentacles = make([]*Tentacle, 0, tc.Count)
	for i := 0; i < tc.Count; i++ {
		anchor := core.V(g.rng.Float64()*g.arena.X, g.rng.Float64()*g.arena.Y)
		length := tc.MinLength + g.rng.Float64()*(tc.MaxLength-tc.MinLength)
		g.tentacles = append(g.tentacles, NewTentacle(anchor, tc.Segments, length/float64(tc.Segments), g.rng.Float64()))
	}
}

func (g *Game) spawnStars() {
	g.stars = make([]star, g.cfg.Background.Stars)
	for i := range g.stars {
		g.stars[i] = star{X: g.rng.Float64(), Y: g.rng.Float64(), Bright: g.rng.Intn(4) == 0}
	}
}

// orbBounds keeps orbs clear of the warning band along the edges.
func (g *Game) orbBounds() Bounds {
	m := g.cfg.Arena.BorderWidth + g.cfg.Arena.WarningDistance + g.cfg.Orbs.Radius
	return Bounds{Min: core.V(m, m), Max: g.arena.Sub(core.V(m, m))}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.creature == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutopilot) {
		g.creature.ClearPointer()
	}

	if g.state == Playing {
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
		g.tickCount++
		g.simulate()
	}

	g.particles.Update()

	return core.StepResult{State: g.State()}
}

// simulate runs the creature, tentacles and collision checks for one tick.
func (g *Game) simulate() {
	// The autopilot clock speeds up with difficulty. The fixed preset or
	// difficulty.enabled: false keeps it at the configured step.
	step := g.difficulty.Speed(g.cfg.Autopilot.Step, g.score, g.tickCount)
	g.creature.Advance(g.arena, g.cfg.Autopilot, step)

	target := g.creature.Pos
	for _, t := range g.tentacles {
		t.Update(target, g.lastTarget)
	}
	g.lastTarget = target

	g.orbs.Pulse()

	if g.checkBoundary() {
		g.end(EndBoundaryHit)
		return
	}
	g.checkOrbs()
}

// checkBoundary updates the warning flag and reports a wall hit.
func (g *Game) checkBoundary() bool {
	p := g.creature.Pos
	edge := min(p.X, p.Y, g.arena.X-p.X, g.arena.Y-p.Y)
	hit := g.creature.Radius + g.cfg.Arena.BorderWidth

	g.creature.NearBoundary = edge < hit+g.cfg.Arena.WarningDistance
	return edge < hit
}

func (g *Game) checkOrbs() {
	for i, o := range g.orbs.Orbs() {
		if o.Collected {
			continue
		}
		if core.Dist(g.creature.Pos, o.Pos) >= g.creature.Radius+o.Radius {
			continue
		}
		if !g.orbs.Collect(i) {
			continue
		}
		g.score++
		g.particles.Burst(o.Pos, g.cfg.Particles.Burst)
		g.scheduleRespawn(i)
	}
}

func (g *Game) scheduleRespawn(i int) {
	gen := g.generation
	delay := time.Duration(g.cfg.Orbs.RespawnDelay) * time.Millisecond
	g.sched.After(delay, func() { g.respawnOrb(gen, i) })
}

// respawnOrb refills slot i. Callbacks from before a reset, or for a slot
// that was already refilled, do nothing.
func (g *Game) respawnOrb(gen, i int) {
	if gen != g.generation || i >= g.orbs.Len() || !g.orbs.Orbs()[i].Collected {
		return
	}
	radius := g.difficulty.OrbRadius(g.cfg.Orbs.Radius, g.cfg.Orbs.MinRadius, g.score, g.tickCount)
	g.orbs.Respawn(i, radius)
}

func (g *Game) scheduleCountdown() {
	gen := g.generation
	g.sched.After(time.Second, func() { g.countdown(gen) })
}

func (g *Game) countdown(gen int) {
	if gen != g.generation || g.state == Ended {
		return
	}
	if !g.paused {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.end(EndTimeExpired)
			return
		}
	}
	g.scheduleCountdown()
}

func (g *Game) end(reason EndReason) {
	if g.state == Ended {
		return
	}
	g.state = Ended
	g.reason = reason
	g.paused = false
}

// cellToWorld maps a screen cell to the world position of its center.
func cellToWorld(col, row int) core.Vec {
	return core.V((float64(col)+0.5)*CellW, (float64(row)+0.5)*CellH)
}

// PointerMove steers the creature toward the hovered cell.
func (g *Game) PointerMove(col, row int) {
	if g.creature != nil {
		g.creature.SetPointer(cellToWorld(col, row))
	}
}

// PointerLeave hands control back to the autopilot.
func (g *Game) PointerLeave() {
	if g.creature != nil {
		g.creature.ClearPointer()
	}
}

// TouchStart steers the creature toward the touched cell.
func (g *Game) TouchStart(col, row int) {
	g.PointerMove(col, row)
}

// TouchMove steers the creature toward the dragged-to cell.
func (g *Game) TouchMove(col, row int) {
	g.PointerMove(col, row)
}

// TouchEnd keeps the last touched position as the target.
func (g *Game) TouchEnd() {}

// Resize adapts the arena to a new surface size, keeping the session.
// A creature left outside the new arena is moved back to its center.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.creature == nil {
		return
	}
	g.runtime.ScreenW = cfg.ScreenW
	g.runtime.ScreenH = cfg.ScreenH
	g.arena = arenaSize(cfg)

	p := g.creature.Pos
	if p.X < 0 || p.Y < 0 || p.X > g.arena.X || p.Y > g.arena.Y {
		center := g.arena.Scale(0.5)
		g.creature.Pos = center
		g.lastTarget = center
	}
	g.orbs.Relocate(g.orbBounds())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		TimeLeft:  g.timeLeft,
		GameOver:  g.state == Ended,
		EndReason: g.reason.String(),
		Paused:    g.paused,
	}
}

// Session returns the session state and end reason.
func (g *Game) Session() (SessionState, EndReason) {
	return g.state, g.reason
}

// Autopilot reports whether the creature is self-driven.
func (g *Game) Autopilot() bool {
	return g.creature == nil || g.creature.Autopilot()
}

func init() {
	registry.Register("tentacles", func() registry.Game {
		return New()
	})
	registry.Register("tentacles_endless", func() registry.Game {
		return NewEndless()
	})
}
