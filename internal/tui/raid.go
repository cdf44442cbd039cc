package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
	vsprogress "github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
)

// DefaultPollInterval is how often the raid view refetches the boss
const DefaultPollInterval = 10 * time.Second

// ImageLoader fetches a boss image so hit effects wait for it
type ImageLoader interface {
	PrefetchImage(ctx context.Context, imageURL string) error
}

// HPTracker is the part of hpdelta.Tracker the view reads and feeds
type HPTracker interface {
	State() hpdelta.State
	ImageLoaded(url string)
	ImageFailed(url string)
}

type bossMsg struct {
	guild    *entities.Guild
	boss     *entities.Boss
	isLeader bool
	err      error
}

type attackMsg struct {
	out *raid.AttackOutput
	err error
}

type imageMsg struct {
	url string
	err error
}

type pollMsg struct{}

// RaidConfig holds the raid screen's collaborators
type RaidConfig struct {
	Context context.Context
	Raid    raid.Service
	Tracker HPTracker
	// Effects must be the queue the tracker's OnBurst pushes to
	Effects *Effects
	Images  ImageLoader
	// BossID selects a boss directly; zero follows the reader's guild
	BossID       int64
	PollInterval time.Duration
	Width        int
	Logger       *zap.Logger
}

// Validate ensures the config is valid
func (c *RaidConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Raid == nil {
		vb.RequiredField("Raid")
	}
	if c.Tracker == nil {
		vb.RequiredField("Tracker")
	}
	if c.Effects == nil {
		vb.RequiredField("Effects")
	}

	return vb.Build()
}

// RaidModel shows a boss's HP, flashes on damage dealt since the last fetch
// and celebrates its defeat
type RaidModel struct {
	ctx      context.Context
	raid     raid.Service
	tracker  HPTracker
	effects  *Effects
	images   ImageLoader
	bossID   int64
	poll     time.Duration
	bar      progress.Model
	spinner  spinner.Model
	confetti *Confetti
	logger   *zap.Logger

	guild     *entities.Guild
	boss      *entities.Boss
	isLeader  bool
	imageURL  string
	lastHit   int64
	notice    string
	err       error
	attacking bool
}

var _ tea.Model = (*RaidModel)(nil)

// NewRaidModel creates the raid screen
func NewRaidModel(cfg *RaidConfig) (*RaidModel, error) {
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
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	width := cfg.Width
	if width <= 0 {
		width = 40
	}

	return &RaidModel{
		ctx:      ctx,
		raid:     cfg.Raid,
		tracker:  cfg.Tracker,
		effects:  cfg.Effects,
		images:   cfg.Images,
		bossID:   cfg.BossID,
		poll:     poll,
		bar:      progress.New(progress.WithSolidFill(string(Destructive)), progress.WithWidth(width), progress.WithoutPercentage()),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		confetti: NewConfetti(width, 6, uint64(cfg.BossID)+1),
		logger:   logging.OrNop(cfg.Logger),
	}, nil
}

// Init loads the boss
func (m *RaidModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// Update handles fetch results, timers and keys
func (m *RaidModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case TimerMsg:
		msg.Run()
	case bossMsg:
		if msg.err != nil {
			if m.boss == nil {
				m.err = msg.err
				return m, tea.Quit
			}
			m.notice = errors.UserMessage(msg.err, raid.MsgLoadFailed)
			m.logger.Warn("refreshing boss", zap.Error(msg.err))
		} else {
			m.guild, m.isLeader = msg.guild, msg.isLeader
			cmds = append(cmds, m.show(msg.boss))
		}
		if m.boss != nil && m.boss.IsActive {
			cmds = append(cmds, tea.Tick(m.poll, func(time.Time) tea.Msg { return pollMsg{} }))
		}
	case attackMsg:
		m.attacking = false
		if msg.err != nil {
			m.notice = errors.UserMessage(msg.err, raid.MsgAttackFailed)
			break
		}
		m.notice = ""
		if msg.out.Damage > 0 {
			m.lastHit = msg.out.Damage
		}
		cmds = append(cmds, m.show(msg.out.Boss))
	case imageMsg:
		if msg.err != nil {
			m.logger.Debug("boss image unavailable", zap.String("url", msg.url), zap.Error(msg.err))
			m.tracker.ImageFailed(msg.url)
		} else {
			m.tracker.ImageLoaded(msg.url)
		}
	case pollMsg:
		cmds = append(cmds, m.fetch())
	case FrameMsg:
		cmds = append(cmds, m.confetti.Update(msg))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "a":
			if m.boss != nil && m.boss.IsActive && !m.attacking {
				m.attacking = true
				cmds = append(cmds, m.attack(m.boss.ID))
			}
		case "r":
			cmds = append(cmds, m.fetch())
		}
	}

	for _, b := range m.effects.Drain() {
		cmds = append(cmds, m.confetti.Start(b))
	}
	return m, tea.Batch(cmds...)
}

// View draws the boss card
func (m *RaidModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(errors.UserMessage(m.err, raid.MsgLoadFailed)) + "\n"
	}
	if m.boss == nil {
		if m.guild != nil {
			out := MutedStyle.Render(raid.MsgNoRaid) + "\n"
			if m.isLeader {
				out += HelpStyle.Render("jeondoksi raid start 로 새 레이드를 시작할 수 있습니다.") + "\n"
			}
			return out
		}
		return m.spinner.View() + " 보스 정보를 불러오는 중...\n"
	}

	st := m.tracker.State()
	b := m.boss

	var body strings.Builder
	body.WriteString(TitleStyle.Render(fmt.Sprintf("%s  Lv.%d", b.Name, b.Level)) + "\n")
	if b.Description != "" {
		body.WriteString(MutedStyle.Render(b.Description) + "\n")
	}
	body.WriteString("\n" + m.bar.ViewAs(vsprogress.Fraction(b.CurrentHP, b.MaxHP)) + "\n")
	body.WriteString(fmt.Sprintf("HP %d / %d", b.CurrentHP, b.MaxHP))

	switch {
	case st.Flashing:
		hit := "💥"
		if m.lastHit > 0 {
			hit = fmt.Sprintf("💥 -%d", m.lastHit)
		}
		body.WriteString("  " + DamageStyle.Render(hit))
	case st.Pending && !st.ImageReady:
		body.WriteString("  " + MutedStyle.Render(m.spinner.View()))
	}

	card := CardStyle
	if st.Flashing {
		card = FlashStyle
	}

	var out strings.Builder
	if v := m.confetti.View(); v != "" {
		out.WriteString(v + "\n")
	}
	out.WriteString(card.Render(body.String()) + "\n")
	if b.Defeated() {
		out.WriteString(VictoryStyle.Render(raid.MsgDefeated) + "\n")
	}
	if m.notice != "" {
		out.WriteString(ErrorStyle.Render(m.notice) + "\n")
	}

	help := "r 새로고침 · q 나가기"
	if b.IsActive {
		help = "a 공격 · " + help
	}
	out.WriteString(HelpStyle.Render(help) + "\n")
	return out.String()
}

// Err is the load failure that ended the program, if any
func (m *RaidModel) Err() error {
	return m.err
}

// Boss is the last boss shown
func (m *RaidModel) Boss() *entities.Boss {
	return m.boss
}

// show records a freshly fetched boss and starts loading its image when it
// changed
func (m *RaidModel) show(b *entities.Boss) tea.Cmd {
	if b == nil {
		return nil
	}
	if m.boss == nil || m.boss.ID != b.ID {
		m.lastHit = 0
	}
	m.boss = b

	url := hpdelta.ImageFor(b)
	if url == m.imageURL {
		return nil
	}
	m.imageURL = url

	if m.images == nil {
		m.tracker.ImageLoaded(url)
		return nil
	}
	ctx, images := m.ctx, m.images
	return func() tea.Msg {
		return imageMsg{url: url, err: images.PrefetchImage(ctx, url)}
	}
}

func (m *RaidModel) fetch() tea.Cmd {
	ctx, svc, bossID := m.ctx, m.raid, m.bossID
	if bossID > 0 {
		return func() tea.Msg {
			out, err := svc.Boss(ctx, &raid.BossInput{BossID: bossID})
			if err != nil {
				return bossMsg{err: err}
			}
			return bossMsg{boss: out.Boss}
		}
	}
	return func() tea.Msg {
		out, err := svc.Load(ctx)
		if err != nil {
			return bossMsg{err: err}
		}
		return bossMsg{guild: out.Guild, boss: out.Boss, isLeader: out.IsLeader}
	}
}

func (m *RaidModel) attack(bossID int64) tea.Cmd {
	ctx, svc := m.ctx, m.raid
	return func() tea.Msg {
		out, err := svc.Attack(ctx, &raid.AttackInput{BossID: bossID})
		return attackMsg{out: out, err: err}
	}
}
