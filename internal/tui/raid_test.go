package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid"
	raidmock "github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
)

type fakeTracker struct {
	mu     sync.Mutex
	state  hpdelta.State
	loaded []string
	failed []string
}

func (f *fakeTracker) State() hpdelta.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeTracker) ImageLoaded(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = append(f.loaded, url)
}

func (f *fakeTracker) ImageFailed(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = append(f.failed, url)
}

type fakeImages struct {
	err error
}

func (f fakeImages) PrefetchImage(context.Context, string) error { return f.err }

type RaidModelTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	svc     *raidmock.MockService
	tracker *fakeTracker
	effects *Effects
	model   *RaidModel
}

func (s *RaidModelTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = raidmock.NewMockService(s.ctrl)
	s.tracker = &fakeTracker{}
	s.effects = NewEffects()
	s.model = s.newModel(0, fakeImages{})
}

func (s *RaidModelTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RaidModelTestSuite) newModel(bossID int64, images ImageLoader) *RaidModel {
	m, err := NewRaidModel(&RaidConfig{
		Raid:    s.svc,
		Tracker: s.tracker,
		Effects: s.effects,
		Images:  images,
		BossID:  bossID,
	})
	s.Require().NoError(err)
	return m
}

// send feeds msg to the model and returns its command
func (s *RaidModelTestSuite) send(msg tea.Msg) tea.Cmd {
	_, cmd := s.model.Update(msg)
	return cmd
}

func (s *RaidModelTestSuite) TestRequiresCollaborators() {
	_, err := NewRaidModel(&RaidConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Raid")
	s.Contains(err.Error(), "Tracker")
	s.Contains(err.Error(), "Effects")
}

func (s *RaidModelTestSuite) TestLoadShowsBossAndLoadsImage() {
	boss := &entities.Boss{ID: 5, Name: "망각의 용", Level: 3, MaxHP: 1000, CurrentHP: 400, ImageURL: "https://cdn/b.png", IsActive: true}
	s.svc.EXPECT().Load(gomock.Any()).Return(&raid.LoadOutput{Guild: &entities.Guild{ID: 1}, Boss: boss}, nil)

	s.send(s.model.fetch()())
	s.Equal(boss, s.model.Boss())

	img := s.model.show(boss)
	s.Nil(img, "same image is not fetched twice")

	view := s.model.View()
	s.Contains(view, "망각의 용")
	s.Contains(view, "HP 400 / 1000")
	s.Contains(view, "a 공격")
}

func (s *RaidModelTestSuite) TestImageResultOpensGate() {
	boss := &entities.Boss{ID: 5, MaxHP: 10, CurrentHP: 10, IsActive: true}
	cmd := s.model.show(boss)
	s.Require().NotNil(cmd)

	s.send(cmd())
	s.Equal([]string{hpdelta.DefaultBossImage}, s.tracker.loaded)

	s.model = s.newModel(0, fakeImages{err: errors.NotFound("gone")})
	cmd = s.model.show(&entities.Boss{ID: 6, ImageURL: "https://cdn/6.png"})
	s.send(cmd())
	s.Equal([]string{"https://cdn/6.png"}, s.tracker.failed)
}

func (s *RaidModelTestSuite) TestWithoutImageLoaderGateOpensImmediately() {
	s.model = s.newModel(0, nil)
	s.Nil(s.model.show(&entities.Boss{ID: 5, ImageURL: "https://cdn/5.png"}))
	s.Equal([]string{"https://cdn/5.png"}, s.tracker.loaded)
}

func (s *RaidModelTestSuite) TestDirectBossID() {
	s.model = s.newModel(9, nil)
	s.svc.EXPECT().Boss(gomock.Any(), &raid.BossInput{BossID: 9}).Return(&raid.BossOutput{Boss: &entities.Boss{ID: 9}}, nil)

	msg := s.model.fetch()()
	s.Equal(int64(9), msg.(bossMsg).boss.ID)
}

func (s *RaidModelTestSuite) TestAttackShowsDamageWhileFlashing() {
	boss := &entities.Boss{ID: 5, Name: "망각의 용", MaxHP: 1000, CurrentHP: 500, IsActive: true}
	s.model.show(boss)

	hit := &entities.Boss{ID: 5, Name: "망각의 용", MaxHP: 1000, CurrentHP: 380, IsActive: true}
	s.svc.EXPECT().Attack(gomock.Any(), &raid.AttackInput{BossID: 5}).Return(&raid.AttackOutput{Boss: hit, Damage: 120}, nil)

	cmd := s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	s.Require().NotNil(cmd)
	s.True(s.model.attacking)

	// a second press while the request is in flight is ignored
	s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	s.send(s.model.attack(5)())
	s.False(s.model.attacking)
	s.Equal(int64(120), s.model.lastHit)

	s.tracker.state = hpdelta.State{BossID: 5, Flashing: true}
	s.Contains(s.model.View(), "-120")
}

func (s *RaidModelTestSuite) TestAttackFailureShowsServerMessage() {
	s.model.show(&entities.Boss{ID: 5, IsActive: true})
	s.send(attackMsg{err: errors.FromResponse(400, "오늘은 이미 공격했습니다.", "")})
	s.Contains(s.model.View(), "오늘은 이미 공격했습니다.")
}

func (s *RaidModelTestSuite) TestDefeatedBossCelebrates() {
	s.model.show(&entities.Boss{ID: 5, MaxHP: 100, CurrentHP: 0, IsActive: false})
	s.effects.Push(hpdelta.CelebrationColors, hpdelta.CelebrationDuration)

	s.send(FrameMsg{})
	s.True(s.model.confetti.Active())
	s.Contains(s.model.View(), raid.MsgDefeated)
	s.NotContains(s.model.View(), "a 공격")
}

func (s *RaidModelTestSuite) TestFirstLoadFailureQuits() {
	s.send(bossMsg{err: errors.Client(errors.CodeFailedPrecondition, raid.MsgNoGuild)})
	s.Require().Error(s.model.Err())
	s.Contains(s.model.View(), raid.MsgNoGuild)
}

func (s *RaidModelTestSuite) TestNoRaid() {
	s.send(bossMsg{guild: &entities.Guild{ID: 1}, isLeader: true})
	s.Contains(s.model.View(), raid.MsgNoRaid)
	s.Contains(s.model.View(), "raid start")
}

func TestRaidModelSuite(t *testing.T) {
	suite.Run(t, new(RaidModelTestSuite))
}
