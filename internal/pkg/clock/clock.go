// Package clock provides time and timer utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback once after a delay. Callbacks are delivered on
// the owner's event loop and cannot be cancelled; owners ignore late callbacks
// themselves.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Real implements Clock using actual system time
type Real struct{}

var (
	_ Clock     = (*Real)(nil)
	_ Scheduler = (*Real)(nil)
)

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on its own goroutine after d
func (c *Real) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
