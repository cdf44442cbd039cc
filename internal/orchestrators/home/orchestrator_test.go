package home

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
	sessionmock "github.com/jeondoksi/jeondoksi-cli/internal/repositories/session/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *apimock.MockClient
	session *sessionmock.MockRepository
	orch    Service
	ctx     context.Context
	user    *entities.User
	books   []*entities.Book
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = apimock.NewMockClient(s.ctrl)
	s.session = sessionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.user = &entities.User{
		UserID:   1,
		Nickname: "독서왕",
		Stats:    entities.Stats{Logic: 70, Emotion: 20, Action: 130},
	}
	s.books = []*entities.Book{{ISBN: "9788937460449", Title: "데미안"}}

	var err error
	s.orch, err = NewOrchestrator(&Config{Client: s.client, Session: s.session})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) loggedIn() {
	s.session.EXPECT().Get(s.ctx).Return(&session.Token{AccessToken: "tok"}, nil)
}

func (s *OrchestratorTestSuite) TestLoadWithoutTokenMakesNoRequests() {
	s.session.EXPECT().Get(s.ctx).Return(nil, errors.NotFound("no session"))

	_, err := s.orch.Load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.Equal(errors.OriginClient, errors.GetOrigin(err))
}

func (s *OrchestratorTestSuite) TestLoadPicksEquippedCharacter() {
	s.loggedIn()
	s.client.EXPECT().GetMe(gomock.Any()).Return(s.user, nil)
	s.client.EXPECT().GetRecommendations(gomock.Any()).Return(s.books, nil)
	s.client.EXPECT().ListCharacters(gomock.Any()).Return([]*entities.Character{
		{CharacterID: 1, Name: "견습 사서", ImageURL: "https://cdn.example.com/1.png"},
		{CharacterID: 2, Name: "대마법사", ImageURL: "https://cdn.example.com/2.png", IsEquipped: true},
	}, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.user, out.User)
	s.Equal(s.books, out.Recommendations)
	s.Equal(int64(2), out.MainCharacter.CharacterID)
	s.Equal("https://cdn.example.com/2.png", out.MainImage)
	s.Equal(personality.Activist, out.Personality.Key)

	s.Require().Len(out.Stats, 3)
	s.Equal("논리", out.Stats[0].Label)
	s.InDelta(70.0, out.Stats[0].Percent, 1e-9)
	s.InDelta(100.0, out.Stats[2].Percent, 1e-9)
}

func (s *OrchestratorTestSuite) TestLoadWithoutCharactersUsesDefaultImage() {
	s.loggedIn()
	s.client.EXPECT().GetMe(gomock.Any()).Return(&entities.User{DominantType: "SAGE"}, nil)
	s.client.EXPECT().GetRecommendations(gomock.Any()).Return(nil, nil)
	s.client.EXPECT().ListCharacters(gomock.Any()).Return(nil, nil)

	out, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Nil(out.MainCharacter)
	s.Equal(entities.DefaultCharacterImage, out.MainImage)
	s.Equal(personality.Sage, out.Personality.Key)
}

func (s *OrchestratorTestSuite) TestLoadFailsWhenAnyFetchFails() {
	s.loggedIn()
	s.client.EXPECT().GetMe(gomock.Any()).Return(nil, errors.FromResponse(401, "", ""))
	s.client.EXPECT().GetRecommendations(gomock.Any()).Return(s.books, nil).AnyTimes()
	s.client.EXPECT().ListCharacters(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.orch.Load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsAuthFailure(err))
}

func (s *OrchestratorTestSuite) TestRefreshRecommendations() {
	s.client.EXPECT().GetRecommendations(s.ctx).Return(s.books, nil)

	out, err := s.orch.RefreshRecommendations(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.books, out.Recommendations)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
