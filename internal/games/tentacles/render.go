package tentacles

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-tentacles/internal/core"
)

// Visual characters for rendering
const (
	CreatureChar = '█'
	OrbChar      = '●'
	StarChar     = '·'
	BrightStar   = '+'
)

// Render draws the current game state to the screen, back to front:
// stars, tentacles, orbs, particles, creature, border, HUD.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil || g.creature == nil {
		return
	}
	dst.Clear()

	g.drawStars(dst)
	g.drawTentacles(dst)
	g.drawOrbs(dst)
	g.drawParticles(dst)
	g.drawCreature(dst)
	g.drawBorder(dst)
	g.drawHUD(dst)

	switch {
	case g.state == Ended && g.reason == EndTimeExpired:
		g.drawCenteredMessage(dst, "TIME EXPIRED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.state == Ended:
		g.drawCenteredMessage(dst, "BOUNDARY HIT", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func toCell(p core.Vec) (int, int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}

func (g *Game) drawStars(dst *core.Screen) {
	w, h := float64(dst.Width()), float64(dst.Height())
	for _, s := range g.stars {
		x, y := int(s.X*w), int(s.Y*h)
		if s.Bright {
			dst.SetColored(x, y, BrightStar, core.ColorGray)
		} else {
			dst.SetColored(x, y, StarChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) drawBorder(dst *core.Screen) {
	color := core.ColorGray
	if g.creature.NearBoundary {
		color = core.ColorOrange
	}
	if g.state == Ended && g.reason == EndBoundaryHit {
		color = core.ColorBrightRed
	}
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), color)
}

// tentaclePalette picks a base and tip color from the tentacle's seed.
func tentaclePalette(seed float64) (core.Color, core.Color) {
	switch {
	case seed < 0.33:
		return core.ColorMagenta, core.ColorBrightMagenta
	case seed < 0.66:
		return core.ColorPurple, core.ColorMagenta
	default:
		return core.ColorTeal, core.ColorBrightCyan
	}
}

// segmentRune picks a line glyph matching the segment direction.
func segmentRune(angle float64) rune {
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '─'
	case a < 3*math.Pi/8:
		return '╲'
	case a < 5*math.Pi/8:
		return '│'
	default:
		return '╱'
	}
}

func (g *Game) drawTentacles(dst *core.Screen) {
	for _, t := range g.tentacles {
		base, tip := tentaclePalette(t.Seed())
		segs := t.Segments()
		for i, s := range segs {
			color := base
			if i >= len(segs)*2/3 {
				color = tip
			}
			x0, y0 := toCell(s.Pos)
			x1, y1 := toCell(s.NextPos)
			dst.DrawLine(x0, y0, x1, y1, segmentRune(s.Angle), color)
		}
	}
}

func (g *Game) drawOrbs(dst *core.Screen) {
	for _, o := range g.orbs.Orbs() {
		if o.Collected {
			continue
		}
		r := o.PulseRadius()
		dst.FillEllipse(o.Pos.X/CellW, o.Pos.Y/CellH, r/CellW, r/CellH, OrbChar, core.ColorBrightYellow)
	}
}

// particleRune maps remaining life to glyph density, standing in for alpha.
func particleRune(fade float64) rune {
	switch {
	case fade > 0.75:
		return '*'
	case fade > 0.5:
		return '+'
	case fade > 0.25:
		return '·'
	default:
		return '.'
	}
}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		f := p.Fade()
		color := core.ColorBrightYellow
		if f <= 0.5 {
			color = core.ColorOrange
		}
		r := p.Size * f
		dst.FillEllipse(p.Pos.X/CellW, p.Pos.Y/CellH, r/CellW, r/CellH, particleRune(f), color)
	}
}

func (g *Game) drawCreature(dst *core.Screen) {
	c := g.creature
	color := core.ColorBrightCyan
	if c.NearBoundary {
		color = core.ColorBrightRed
	}
	dst.FillEllipse(c.Pos.X/CellW, c.Pos.Y/CellH, c.Radius/CellW, c.Radius/CellH, CreatureChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	text := fmt.Sprintf(" Score: %d ", g.score)
	if g.timeLeft >= 0 {
		text += fmt.Sprintf(" Time: %ds ", g.timeLeft)
	}
	dst.DrawTextColored(2, 0, text, core.ColorBrightWhite)

	if g.creature.Autopilot() && g.state == Playing {
		label := " AUTOPILOT "
		dst.DrawTextColored(dst.Width()-len(label)-2, 0, label, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
