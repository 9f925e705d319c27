// Package tui hosts games in a Bubble Tea program. It owns the frame
// loop, maps keyboard and mouse events onto the game, and releases deferred
// game callbacks on the Update goroutine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next frame. A non-positive rate falls back to 60 Hz.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
