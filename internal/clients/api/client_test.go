package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/idgen"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
	sessionmock "github.com/jeondoksi/jeondoksi-cli/internal/repositories/session/mock"
)

const testToken = "token-abc"

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

type ClientTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSession *sessionmock.MockRepository
	server      *httptest.Server
	handler     http.HandlerFunc
	requests    []captured
	client      api.Client
	ctx         context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSession = sessionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.requests = nil
	s.handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.requests = append(s.requests, captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   body,
		})
		s.handler(w, r)
	}))

	client, err := api.New(&api.Config{
		BaseURL:    s.server.URL + "/",
		Timeout:    5 * time.Second,
		Session:    s.mockSession,
		RequestIDs: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *ClientTestSuite) loggedIn() {
	s.mockSession.EXPECT().Get(gomock.Any()).Return(&session.Token{AccessToken: testToken}, nil).AnyTimes()
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (s *ClientTestSuite) lastRequest() captured {
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientTestSuite) TestNewValidation() {
	testCases := []struct {
		name string
		cfg  *api.Config
	}{
		{"nil config", nil},
		{"missing base url", &api.Config{Session: s.mockSession}},
		{"relative base url", &api.Config{BaseURL: "/api", Session: s.mockSession}},
		{"missing session", &api.Config{BaseURL: "http://localhost:8080"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := api.New(tc.cfg)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ClientTestSuite) TestHeaders() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":true,"data":{"userId":1,"nickname":"책벌레","point":250}}`)

	user, err := s.client.GetMe(s.ctx)
	s.Require().NoError(err)
	s.Equal("책벌레", user.Nickname)
	s.Equal(250, user.Point)

	req := s.lastRequest()
	s.Equal(http.MethodGet, req.method)
	s.Equal("/api/v1/users/me", req.path)
	s.Equal("Bearer "+testToken, req.header.Get("Authorization"))
	s.Equal("req_1", req.header.Get("X-Request-ID"))
	s.Equal("application/json", req.header.Get("Content-Type"))
}

func (s *ClientTestSuite) TestNoTokenNoAuthorization() {
	s.mockSession.EXPECT().Get(gomock.Any()).Return(nil, errors.NotFound("no stored session"))
	s.respond(http.StatusOK, `{"success":true,"data":{"accessToken":"new-token"}}`)

	out, err := s.client.Login(s.ctx, &entities.LoginRequest{Email: "a@b.kr", Password: "password1"})
	s.Require().NoError(err)
	s.Equal("new-token", out.AccessToken)

	req := s.lastRequest()
	s.Empty(req.header.Get("Authorization"))

	var body map[string]string
	s.Require().NoError(json.Unmarshal(req.body, &body))
	s.Equal("a@b.kr", body["email"])
}

func (s *ClientTestSuite) TestEnvelopeFailureKeepsServerMessage() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":false,"data":null,"message":"포인트가 부족합니다.","errorCode":"NOT_ENOUGH_POINT"}`)

	_, err := s.client.DrawCharacter(s.ctx)
	s.Require().Error(err)
	s.Equal("포인트가 부족합니다.", errors.UserMessage(err, "fallback"))
	s.Equal("NOT_ENOUGH_POINT", errors.GetMeta(err)[errors.MetaErrorCode])
}

func (s *ClientTestSuite) TestHTTPErrorWithEnvelope() {
	s.loggedIn()
	s.respond(http.StatusConflict, `{"success":false,"data":null,"message":"이미 길드에 가입되어 있습니다.","errorCode":"ALREADY_JOINED"}`)

	err := s.client.JoinGuild(s.ctx, 3, nil)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal("이미 길드에 가입되어 있습니다.", errors.UserMessage(err, "가입 실패"))

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.lastRequest().body, &body))
	s.Contains(body, "joinCode")
	s.Nil(body["joinCode"])
}

func (s *ClientTestSuite) TestUnauthorizedClearsSession() {
	s.loggedIn()
	s.mockSession.EXPECT().Clear(gomock.Any()).Return(nil)
	s.respond(http.StatusUnauthorized, ``)

	_, err := s.client.GetMe(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.True(errors.IsAuthFailure(err))
}

func (s *ClientTestSuite) TestForbiddenClearsSession() {
	s.loggedIn()
	s.mockSession.EXPECT().Clear(gomock.Any()).Return(nil)
	s.respond(http.StatusForbidden, `{"message":"Access Denied"}`)

	_, err := s.client.ListCharacters(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Equal("Access Denied", errors.UserMessage(err, "x"))
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.loggedIn()
	s.server.Close()

	_, err := s.client.GetMe(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.OriginTransport, errors.GetOrigin(err))
	s.Equal("잠시 후 다시 시도해주세요.", errors.UserMessage(err, "잠시 후 다시 시도해주세요."))
}

func (s *ClientTestSuite) TestBarePayloads() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"id":5,"name":"망각의 용","level":3,"maxHp":1000,"currentHp":640,"imageUrl":"http://img/boss.png","isActive":true}`)

	boss, err := s.client.GetBoss(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(int64(640), boss.CurrentHP)
	s.True(boss.IsActive)
	s.Equal("/api/v1/bosses/5", s.lastRequest().path)

	_, err = s.client.AttackBoss(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(http.MethodPost, s.lastRequest().method)
}

func (s *ClientTestSuite) TestGuildListShapes() {
	s.loggedIn()

	s.respond(http.StatusOK, `{"content":[{"id":1,"name":"새벽독서"},{"id":2,"name":"고전읽기"}],"totalElements":2}`)
	guilds, err := s.client.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Len(guilds, 2)

	s.respond(http.StatusOK, `[{"id":3,"name":"SF클럽"}]`)
	guilds, err = s.client.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(guilds, 1)
	s.Equal("SF클럽", guilds[0].Name)

	s.respond(http.StatusOK, `{"success":true,"data":{"content":[{"id":4}]}}`)
	guilds, err = s.client.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Len(guilds, 1)
}

func (s *ClientTestSuite) TestGetMyGuild() {
	s.loggedIn()

	s.Run("no guild as empty body", func() {
		s.respond(http.StatusOK, ``)
		guild, err := s.client.GetMyGuild(s.ctx)
		s.NoError(err)
		s.Nil(guild)
	})

	s.Run("no guild as 404", func() {
		s.respond(http.StatusNotFound, `{"message":"no guild"}`)
		guild, err := s.client.GetMyGuild(s.ctx)
		s.NoError(err)
		s.Nil(guild)
	})

	s.Run("guild with boss", func() {
		s.respond(http.StatusOK, `{"id":9,"name":"새벽독서","leaderName":"책벌레","currentBossId":12}`)
		guild, err := s.client.GetMyGuild(s.ctx)
		s.Require().NoError(err)
		s.Require().NotNil(guild.CurrentBossID)
		s.Equal(int64(12), *guild.CurrentBossID)
	})
}

func (s *ClientTestSuite) TestBestsellerPaths() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":true,"data":[{"title":"A","bestRank":1}]}`)

	items, err := s.client.ListBestsellers(s.ctx, &api.ListBestsellersInput{CategoryID: 0, Page: 1})
	s.Require().NoError(err)
	s.Len(items, 1)
	s.Equal("/api/v1/books/bestsellers", s.lastRequest().path)
	s.Equal("page=1", s.lastRequest().query)

	_, err = s.client.ListBestsellers(s.ctx, &api.ListBestsellersInput{CategoryID: 55889, Page: 3})
	s.Require().NoError(err)
	s.Equal("/api/v1/books/bestsellers/55889", s.lastRequest().path)
	s.Equal("page=3", s.lastRequest().query)

	_, err = s.client.ListBestsellers(s.ctx, &api.ListBestsellersInput{Page: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSearchEscapesQuery() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":true,"data":[]}`)

	books, err := s.client.SearchBooks(s.ctx, "  데미안 & 싯다르타 ")
	s.Require().NoError(err)
	s.Empty(books)
	values, err := url.ParseQuery(s.lastRequest().query)
	s.Require().NoError(err)
	s.Equal("데미안 & 싯다르타", values.Get("query"))

	requests := len(s.requests)
	_, err = s.client.SearchBooks(s.ctx, "   ")
	s.True(errors.IsInvalidArgument(err))
	s.Len(s.requests, requests)
}

func (s *ClientTestSuite) TestQuizOptionsNormalization() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":true,"data":{"quizId":77,"questions":[
		{"questionNo":1,"questionId":101,"question":"주인공은?","type":"MULTIPLE","options":["A","B","C","D"]},
		{"questionNo":2,"questionId":102,"question":"참인가?","type":"OX","optionsJson":"[\"O\",\"X\"]"},
		{"questionNo":3,"questionId":103,"question":"깨진 보기","type":"MULTIPLE","optionsJson":"[oops"},
		{"questionNo":4,"questionId":104,"question":"한 단어로","type":"SHORT"}
	]}}`)

	quiz, err := s.client.GetQuiz(s.ctx, "9788937460449")
	s.Require().NoError(err)
	s.Equal("/api/v1/quizzes/9788937460449", s.lastRequest().path)
	s.Require().Len(quiz.Questions, 4)

	s.Equal([]string{"A", "B", "C", "D"}, quiz.Questions[0].Options)
	s.Equal([]string{"O", "X"}, quiz.Questions[1].Options)
	s.Equal([]string{}, quiz.Questions[2].Options)
	s.Equal([]string{}, quiz.Questions[3].Options)
	s.Equal(entities.QuestionShort, quiz.Questions[3].Type)
}

func (s *ClientTestSuite) TestSubmitReport() {
	s.loggedIn()
	s.respond(http.StatusOK, `{"success":true,"data":{"reportId":31,"book":{"isbn":"1","title":"데미안"},
		"userContent":"...","analysisResult":{"type":"PHILOSOPHER","typeName":"사색하는 철학자",
		"scores":{"logic":70,"emotion":55,"action":20},"feedback":"좋아요"},"createdAt":"2024-06-01T10:00:00"}}`)

	out, err := s.client.SubmitReport(s.ctx, &entities.ReportSubmission{ISBN: "1", Title: "데미안", Content: "..."})
	s.Require().NoError(err)
	s.Equal(int64(31), out.ReportID)
	s.Equal(70, out.AnalysisResult.Scores.Logic)
	s.Equal("/api/v1/reports", s.lastRequest().path)
}

func (s *ClientTestSuite) TestPrefetchImage() {
	s.loggedIn()
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/images/missing.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("png"))
	}

	s.NoError(s.client.PrefetchImage(s.ctx, s.server.URL+"/images/boss.png"))
	s.Empty(s.lastRequest().header.Get("Authorization"))

	err := s.client.PrefetchImage(s.ctx, s.server.URL+"/images/missing.png")
	s.True(errors.IsNotFound(err))

	s.True(errors.IsInvalidArgument(s.client.PrefetchImage(s.ctx, "")))
}
