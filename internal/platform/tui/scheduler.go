package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// deferredMsg carries a callback released by a Scheduler timer.
type deferredMsg struct {
	fn func()
}

// Scheduler implements core.Scheduler on top of tea.Tick. Callbacks are
// queued by After and handed to the program by Flush; when a timer fires,
// the model runs the callback inside Update, on the same goroutine as Step.
type Scheduler struct {
	queue []tea.Cmd
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.queue = append(s.queue, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{fn: fn}
	}))
}

// Flush returns the queued timers as one command and empties the queue.
// It returns nil when nothing is queued.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	cmds := s.queue
	s.queue = nil
	return tea.Batch(cmds...)
}

// Len returns the number of timers waiting for Flush.
func (s *Scheduler) Len() int {
	return len(s.queue)
}
