package core

import (
	"sort"
	"time"
)

// Scheduler defers a callback by a fixed duration. Implementations must run
// fn on the same goroutine that drives Game.Step, so callbacks never race
// the simulation. Scheduled callbacks cannot be cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type pending struct {
	at  time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a Scheduler driven by an explicit clock.
// Callbacks run synchronously inside Advance, in due-time order.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []pending
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After queues fn to run once the clock has advanced by d.
func (m *ManualScheduler) After(d time.Duration, fn func()) {
	m.seq++
	m.pending = append(m.pending, pending{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock forward by d, running every callback that becomes
// due. Callbacks scheduled while advancing run too if they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		m.now = next.at
		next.fn()
	}
	m.now = target
}

// Pending returns the number of callbacks still waiting.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Now returns the scheduler's current clock.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

func (m *ManualScheduler) popDue(target time.Duration) (pending, bool) {
	if len(m.pending) == 0 {
		return pending{}, false
	}
	sort.Slice(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if m.pending[0].at > target {
		return pending{}, false
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	return next, true
}
