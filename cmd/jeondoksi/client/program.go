package client

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
)

// play runs a full-screen model with sched routed to it until it quits
func (a *app) play(ctx context.Context, m tea.Model, sched *tui.Scheduler) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(a.out))
	sched.Attach(p)
	defer sched.Attach(nil)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "terminal program failed")
	}
	return nil
}
