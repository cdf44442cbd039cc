package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

// DrawFunc performs the draw request
type DrawFunc func(ctx context.Context) (reveal.Reward, error)

type drawResultMsg struct {
	draw   reveal.DrawID
	reward reveal.Reward
	err    error
}

// RevealConfig holds the reveal screen's collaborators
type RevealConfig struct {
	Context   context.Context
	Scheduler clock.Scheduler
	Draw      DrawFunc
	Width     int
	Height    int
	Logger    *zap.Logger
}

// Validate ensures the config is valid
func (c *RevealConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if c.Draw == nil {
		vb.RequiredField("Draw")
	}

	return vb.Build()
}

// RevealModel plays the chest animation while the draw request is in flight
// and shows the reward once both are done
type RevealModel struct {
	ctx      context.Context
	seq      *reveal.Sequencer
	drawFn   DrawFunc
	effects  *Effects
	confetti *Confetti
	logger   *zap.Logger

	draw   reveal.DrawID
	reward *reveal.Reward
	err    error
	done   bool
}

var _ tea.Model = (*RevealModel)(nil)

// NewRevealModel creates the reveal screen
func NewRevealModel(cfg *RevealConfig) (*RevealModel, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 40
	}
	if height <= 0 {
		height = 8
	}

	m := &RevealModel{
		ctx:      ctx,
		drawFn:   cfg.Draw,
		effects:  NewEffects(),
		confetti: NewConfetti(width, height, uint64(width*height)),
		logger:   logging.OrNop(cfg.Logger),
	}

	seq, err := reveal.New(&reveal.Config{
		Scheduler: cfg.Scheduler,
		OnBurst:   func(b reveal.Burst) { m.effects.Push(b.Colors, b.Duration) },
		OnClose:   func() { m.done = true },
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	m.seq = seq

	return m, nil
}

// Init starts the chest and fires the draw request
func (m *RevealModel) Init() tea.Cmd {
	m.draw = m.seq.Start()
	draw, fn, ctx := m.draw, m.drawFn, m.ctx

	return func() tea.Msg {
		reward, err := fn(ctx)
		return drawResultMsg{draw: draw, reward: reward, err: err}
	}
}

// Update handles timers, the draw result and keys
func (m *RevealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case TimerMsg:
		msg.Run()
	case drawResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.seq.Fail(msg.draw)
			m.seq.Stop()
			return m, tea.Quit
		}
		r := msg.reward
		m.reward = &r
		m.seq.Deliver(msg.draw, r)
	case FrameMsg:
		cmds = append(cmds, m.confetti.Update(msg))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.seq.Stop()
			return m, tea.Quit
		case "enter", " ":
			m.seq.Close()
		}
	}

	for _, b := range m.effects.Drain() {
		cmds = append(cmds, m.confetti.Start(b))
	}
	if m.done {
		m.seq.Stop()
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// View draws the current phase
func (m *RevealModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(errors.UserMessage(m.err, "소환에 실패했습니다.")) + "\n"
	}

	st := m.seq.State()
	var b strings.Builder

	switch st.Phase {
	case reveal.Chest:
		b.WriteString(chest(false))
		b.WriteString("\n" + MutedStyle.Render(st.Phase.Caption()))
	case reveal.Opening:
		b.WriteString(chest(true))
		b.WriteString("\n" + TitleStyle.Render(st.Phase.Caption()))
	case reveal.Revealed:
		if v := m.confetti.View(); v != "" {
			b.WriteString(v + "\n")
		}
		if st.Reward != nil {
			b.WriteString(RewardCard(*st.Reward))
		}
		b.WriteString("\n" + HelpStyle.Render("Enter 키를 눌러 닫기"))
	}

	return b.String() + "\n"
}

// Reward is the delivered reward, if any
func (m *RevealModel) Reward() *reveal.Reward {
	return m.reward
}

// Err is the draw failure, if any
func (m *RevealModel) Err() error {
	return m.err
}

// RewardCard renders a reward framed in its rarity color
func RewardCard(r reveal.Reward) string {
	name := RarityStyle(r.Rarity).Render(r.Name)
	body := fmt.Sprintf("%s\n%s", name, MutedStyle.Render(fmt.Sprintf("%s · Lv.%d", r.Rarity, r.Level)))
	return CardStyle.BorderForeground(RarityColor(r.Rarity)).Render(body)
}

func chest(shaking bool) string {
	art := "🎁"
	if shaking {
		art = "  🎁  \n ~ ~ ~"
	}
	return lipgloss.NewStyle().Foreground(Accent).Render(art)
}
