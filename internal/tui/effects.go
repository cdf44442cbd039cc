package tui

import (
	"sync"
	"time"
)

// Burst is a queued particle effect
type Burst struct {
	Colors   []string
	Duration time.Duration
}

// Effects collects bursts raised from any goroutine until the model drains
// them on its next update
type Effects struct {
	mu      sync.Mutex
	pending []Burst
}

// NewEffects creates an empty queue
func NewEffects() *Effects {
	return &Effects{}
}

// Push queues a burst
func (e *Effects) Push(colors []string, d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = append(e.pending, Burst{Colors: colors, Duration: d})
}

// Drain returns and clears the queued bursts
func (e *Effects) Drain() []Burst {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.pending
	e.pending = nil
	return out
}
