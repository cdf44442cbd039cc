package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
)

// Sender accepts messages for a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// TimerMsg carries a due callback onto the event loop
type TimerMsg struct {
	fn func()
}

// Run invokes the callback
func (t TimerMsg) Run() {
	if t.fn != nil {
		t.fn()
	}
}

// Scheduler implements clock.Scheduler by posting a TimerMsg to the attached
// program when each timer fires. Timers that fire before Attach or after the
// program exits are dropped.
type Scheduler struct {
	mu     sync.Mutex
	sender Sender
}

var _ clock.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a detached Scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Attach routes future callbacks to sender. Passing nil detaches.
func (s *Scheduler) Attach(sender Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

// AfterFunc schedules fn to run on the event loop after d
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.mu.Lock()
		sender := s.sender
		s.mu.Unlock()

		if sender != nil {
			sender.Send(TimerMsg{fn: fn})
		}
	})
}
