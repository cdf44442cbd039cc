package raid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid"
	raidmock "github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/testutils"
	"github.com/jeondoksi/jeondoksi-cli/internal/testutils/builders"
	"github.com/jeondoksi/jeondoksi-cli/internal/testutils/mocks"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
)

func bossID(id int64) *int64 { return &id }

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	client   *apimock.MockClient
	observer *raidmock.MockObserver
	orch     raid.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = apimock.NewMockClient(s.ctrl)
	s.observer = raidmock.NewMockObserver(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orch, err = raid.NewOrchestrator(&raid.Config{Client: s.client, Observer: s.observer})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestLoadWithoutGuild() {
	s.client.EXPECT().GetMyGuild(s.ctx).Return(nil, nil)

	_, err := s.orch.Load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(raid.MsgNoGuild, errors.UserMessage(err, ""))
}

func (s *OrchestratorTestSuite) TestLoadWithoutRaid() {
	s.client.EXPECT().GetMyGuild(s.ctx).Return(&entities.Guild{ID: 1, LeaderName: "리더"}, nil)
	s.client.EXPECT().GetMe(s.ctx).Return(&entities.User{Nickname: "리더"}, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(out.Boss)
	s.True(out.IsLeader)
}

func (s *OrchestratorTestSuite) TestLoadObservesBoss() {
	boss := &entities.Boss{ID: 5, MaxHP: 1000, CurrentHP: 800, IsActive: true}
	obs := &hpdelta.Observation{Previous: 900, HasPrevious: true, DamagePending: true}
	s.client.EXPECT().GetMyGuild(s.ctx).Return(&entities.Guild{ID: 1, CurrentBossID: bossID(5)}, nil)
	s.client.EXPECT().GetMe(s.ctx).Return(nil, errors.Unavailable("offline"))
	s.client.EXPECT().GetBoss(s.ctx, int64(5)).Return(boss, nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(obs, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(boss, out.Boss)
	s.Equal(obs, out.Observation)
	s.False(out.IsLeader)
}

func (s *OrchestratorTestSuite) TestBossToleratesObserverFailure() {
	boss := &entities.Boss{ID: 5, CurrentHP: 10, IsActive: true}
	obs := &hpdelta.Observation{}
	s.client.EXPECT().GetBoss(s.ctx, int64(5)).Return(boss, nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(obs, errors.Internal("disk full"))

	out, err := s.orch.Boss(s.ctx, &raid.BossInput{BossID: 5})
	s.Require().NoError(err)
	s.Equal(obs, out.Observation)

	_, err = s.orch.Boss(s.ctx, &raid.BossInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttackReportsDamage() {
	boss := &entities.Boss{ID: 5, CurrentHP: 700, IsActive: true}
	s.client.EXPECT().AttackBoss(s.ctx, int64(5)).Return(boss, nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(&hpdelta.Observation{Previous: 800, HasPrevious: true}, nil)

	out, err := s.orch.Attack(s.ctx, &raid.AttackInput{BossID: 5})
	s.Require().NoError(err)
	s.Equal(int64(100), out.Damage)
}

func (s *OrchestratorTestSuite) TestAttackWithoutBaseline() {
	boss := &entities.Boss{ID: 5, CurrentHP: 700, IsActive: true}
	s.client.EXPECT().AttackBoss(s.ctx, int64(5)).Return(boss, nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(&hpdelta.Observation{}, nil)

	out, err := s.orch.Attack(s.ctx, &raid.AttackInput{BossID: 5})
	s.Require().NoError(err)
	s.Zero(out.Damage)
}

func (s *OrchestratorTestSuite) TestAttackFailure() {
	s.client.EXPECT().AttackBoss(s.ctx, int64(5)).Return(nil, errors.FromResponse(400, "오늘은 이미 공격했습니다.", ""))

	_, err := s.orch.Attack(s.ctx, &raid.AttackInput{BossID: 5})
	s.Require().Error(err)
	s.Equal("오늘은 이미 공격했습니다.", errors.UserMessage(err, raid.MsgAttackFailed))
}

func (s *OrchestratorTestSuite) TestStartRaid() {
	boss := &entities.Boss{ID: 9, MaxHP: 5000, CurrentHP: 5000, IsActive: true}
	g := &entities.Guild{ID: 2, CurrentBossID: bossID(9)}
	gomock.InOrder(
		s.client.EXPECT().StartRaid(s.ctx, int64(2)).Return(nil),
		s.client.EXPECT().GetGuild(s.ctx, int64(2)).Return(g, nil),
		s.client.EXPECT().GetBoss(s.ctx, int64(9)).Return(boss, nil),
	)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(&hpdelta.Observation{}, nil)

	out, err := s.orch.StartRaid(s.ctx, &raid.StartRaidInput{GuildID: 2})
	s.Require().NoError(err)
	s.Equal(g, out.Guild)
	s.Equal(boss, out.Boss)
}

func (s *OrchestratorTestSuite) TestWithoutObserver() {
	orch, err := raid.NewOrchestrator(&raid.Config{Client: s.client})
	s.Require().NoError(err)

	s.client.EXPECT().GetBoss(s.ctx, int64(3)).Return(&entities.Boss{ID: 3}, nil)
	out, err := orch.Boss(s.ctx, &raid.BossInput{BossID: 3})
	s.Require().NoError(err)
	s.Nil(out.Observation)
}

func (s *OrchestratorTestSuite) TestLoadLeaderWithRaid() {
	g := builders.NewGuildBuilder().WithID(4).WithLeader(testutils.TestNickname).WithRaid(7).Build()
	boss := builders.NewBossBuilder().WithID(7).WithHP(400, 1000).Build()
	mocks.ExpectMyGuild(s.ctx, s.client, g, boss)
	mocks.ExpectMe(s.ctx, s.client, testutils.CreateTestUser(testutils.TestNickname), nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(&hpdelta.Observation{}, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(g, out.Guild)
	s.Equal(boss, out.Boss)
	s.True(out.IsLeader)
}

func (s *OrchestratorTestSuite) TestLoadDefeatedBoss() {
	g := testutils.CreateTestGuildWithRaid(4, "다른 사람", 7)
	boss := builders.NewBossBuilder().WithID(7).Defeated().Build()
	obs := &hpdelta.Observation{Previous: 50, HasPrevious: true, Celebrate: true}
	mocks.ExpectMyGuild(s.ctx, s.client, g, boss)
	mocks.ExpectMe(s.ctx, s.client, testutils.CreateTestUser(testutils.TestNickname), nil)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(obs, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.True(out.Boss.Defeated())
	s.True(out.Observation.Celebrate)
	s.False(out.IsLeader)
}

func (s *OrchestratorTestSuite) TestStartRaidFromFixtures() {
	g := testutils.CreateTestGuildWithRaid(2, testutils.TestNickname, 11)
	boss := testutils.CreateTestBoss(11, 1000)
	mocks.ExpectRaidStart(s.ctx, s.client, g, boss)
	s.observer.EXPECT().Observe(s.ctx, boss).Return(&hpdelta.Observation{}, nil)

	out, err := s.orch.StartRaid(s.ctx, &raid.StartRaidInput{GuildID: 2})
	s.Require().NoError(err)
	s.Equal(testutils.TestBossName, out.Boss.Name)
	s.True(out.Boss.IsActive)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
