package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *apimock.MockClient
	orch   Service
	ctx    context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = apimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orch, err = NewOrchestrator(&Config{Client: s.client})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestBalance() {
	s.client.EXPECT().GetMe(s.ctx).Return(&entities.User{Point: 250}, nil)

	out, err := s.orch.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(250, out.Points)
}

func (s *OrchestratorTestSuite) TestDrawWithInsufficientPointsMakesNoRequest() {
	for _, points := range []int{0, 99} {
		_, err := s.orch.Draw(s.ctx, &DrawInput{KnownPoints: points})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(errors.OriginClient, errors.GetOrigin(err))
		s.Equal("소환을 위한 포인트가 부족합니다. (필요: 100 P)", errors.UserMessage(err, ""))

		_, err = s.orch.ItemGacha(s.ctx, &DrawInput{KnownPoints: points})
		s.True(errors.IsFailedPrecondition(err))
	}

	_, err := s.orch.Draw(s.ctx, nil)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDrawCharacter() {
	drawn := &entities.Character{CharacterID: 9, Name: "전설의 사서", Rarity: entities.RarityUnique, Level: 1}
	gomock.InOrder(
		s.client.EXPECT().DrawCharacter(s.ctx).Return(drawn, nil),
		s.client.EXPECT().GetMe(s.ctx).Return(&entities.User{Point: 0}, nil),
	)

	out, err := s.orch.Draw(s.ctx, &DrawInput{KnownPoints: 100})
	s.Require().NoError(err)
	s.Equal(drawn, out.Character)
	s.Equal("전설의 사서", out.Reward.Name)
	s.Equal(entities.RarityUnique, out.Reward.Rarity)
	s.True(out.PointsKnown)
	s.Equal(0, out.Points)
}

func (s *OrchestratorTestSuite) TestDrawSurvivesBalanceRefreshFailure() {
	s.client.EXPECT().DrawCharacter(s.ctx).Return(&entities.Character{CharacterID: 1, Rarity: entities.RarityCommon}, nil)
	s.client.EXPECT().GetMe(s.ctx).Return(nil, errors.Unavailable("offline"))

	out, err := s.orch.Draw(s.ctx, &DrawInput{KnownPoints: 300})
	s.Require().NoError(err)
	s.False(out.PointsKnown)
}

func (s *OrchestratorTestSuite) TestDrawServerFailure() {
	s.client.EXPECT().DrawCharacter(s.ctx).Return(nil, errors.FromResponse(400, "포인트가 부족합니다.", "POINT_001"))

	_, err := s.orch.Draw(s.ctx, &DrawInput{KnownPoints: 100})
	s.Require().Error(err)
	s.Equal("포인트가 부족합니다.", errors.UserMessage(err, MsgDrawFailed))
}

func (s *OrchestratorTestSuite) TestItemGacha() {
	item := &entities.Item{ItemID: 4, InventoryID: 40, Name: "고서의 깃펜", Rarity: entities.RarityEpic, Level: 2}
	s.client.EXPECT().DrawItem(s.ctx).Return(item, nil)
	s.client.EXPECT().GetMe(s.ctx).Return(&entities.User{Point: 150}, nil)

	out, err := s.orch.ItemGacha(s.ctx, &DrawInput{KnownPoints: 250})
	s.Require().NoError(err)
	s.Equal(item, out.Item)
	s.Equal("고서의 깃펜", out.Reward.Name)
	s.Equal(2, out.Reward.Level)
	s.Equal(150, out.Points)
}

func (s *OrchestratorTestSuite) TestEquipItem() {
	s.client.EXPECT().EquipItem(s.ctx, int64(40)).Return(nil)
	s.NoError(s.orch.EquipItem(s.ctx, &EquipItemInput{InventoryID: 40}))

	err := s.orch.EquipItem(s.ctx, &EquipItemInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
