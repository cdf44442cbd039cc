package clock

import (
	"sync"
	"time"
)

// Manual is a Clock and Scheduler that only moves when Advance is called.
// Callbacks run synchronously inside Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []manualTimer
}

type manualTimer struct {
	at  time.Time
	seq uint64
	fn  func()
}

var (
	_ Clock     = (*Manual)(nil)
	_ Scheduler = (*Manual)(nil)
)

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn at Now()+d
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.timers = append(m.timers, manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn})
}

// Advance moves time forward by d, firing every callback that falls due in
// deadline order. Callbacks scheduled while advancing fire too if they are
// due before the new time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		idx := -1
		for i, t := range m.timers {
			if t.at.After(target) {
				continue
			}
			if idx < 0 || t.at.Before(m.timers[idx].at) ||
				(t.at.Equal(m.timers[idx].at) && t.seq < m.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			m.now = target
			m.mu.Unlock()
			return
		}

		next := m.timers[idx]
		m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks that have not fired yet
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
