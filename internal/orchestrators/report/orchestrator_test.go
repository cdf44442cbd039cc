package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
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

// reflection returns text with n non-whitespace characters spread over words
func reflection(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("책")
		if i%5 == 4 {
			b.WriteString(" \n")
		}
	}
	return b.String()
}

func (s *OrchestratorTestSuite) TestSubmitRejectsShortContentWithoutRequest() {
	_, err := s.orch.Submit(s.ctx, &SubmitInput{ISBN: "9788937460449", Title: "데미안", Content: reflection(49)})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(errors.OriginClient, errors.GetOrigin(err))
	s.Equal(TooShortMessage(49), errors.UserMessage(err, ""))
	s.Equal(49, errors.GetMeta(err)["content_length"])
}

func (s *OrchestratorTestSuite) TestSubmitRequiresBook() {
	_, err := s.orch.Submit(s.ctx, &SubmitInput{Content: reflection(80)})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(MsgMissingBook, errors.UserMessage(err, ""))
}

func (s *OrchestratorTestSuite) TestSubmitAtMinimumLength() {
	content := reflection(50)
	detail := &entities.ReportDetail{
		ReportID: 12,
		AnalysisResult: entities.AnalysisResult{
			Type:   "PHILOSOPHER",
			Scores: entities.Scores{Logic: 80, Emotion: 40, Action: 20},
		},
	}
	s.client.EXPECT().SubmitReport(s.ctx, &entities.ReportSubmission{
		ISBN:    "9788937460449",
		Title:   "데미안",
		Content: content,
	}).Return(detail, nil)

	out, err := s.orch.Submit(s.ctx, &SubmitInput{ISBN: " 9788937460449 ", Title: "데미안", Content: content})
	s.Require().NoError(err)
	s.Equal(detail, out.Report)
	s.Equal(80, out.Report.AnalysisResult.Scores.Logic)
	s.Equal(personality.Philosopher, out.Personality.Key)
}

func (s *OrchestratorTestSuite) TestSubmitServerFailure() {
	s.client.EXPECT().SubmitReport(s.ctx, gomock.Any()).
		Return(nil, errors.FromResponse(500, "분석 서버가 응답하지 않습니다.", "AI_001"))

	_, err := s.orch.Submit(s.ctx, &SubmitInput{ISBN: "1", Content: reflection(60)})
	s.Require().Error(err)
	s.Equal("분석 서버가 응답하지 않습니다.", errors.UserMessage(err, MsgSubmitFailed))
}

func (s *OrchestratorTestSuite) TestContentLengthIgnoresWhitespace() {
	s.Equal(3, ContentLength(" a\tb\n c "))
	s.Equal(50, ContentLength(reflection(50)))
}

func (s *OrchestratorTestSuite) TestList() {
	reports := []*entities.ReportSummary{{ReportID: 1, BookTitle: "데미안", ResultType: "EMPATH"}}
	s.client.EXPECT().ListMyReports(s.ctx).Return(reports, nil)

	out, err := s.orch.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(reports, out.Reports)
}

func (s *OrchestratorTestSuite) TestGet() {
	s.Run("found", func() {
		detail := &entities.ReportDetail{ReportID: 3, AnalysisResult: entities.AnalysisResult{Type: "NOPE"}}
		s.client.EXPECT().GetReport(s.ctx, int64(3)).Return(detail, nil)

		out, err := s.orch.Get(s.ctx, &GetInput{ReportID: 3})
		s.Require().NoError(err)
		s.Equal(detail, out.Report)
		s.Equal(personality.Reader, out.Personality.Key)
	})

	s.Run("invalid id", func() {
		_, err := s.orch.Get(s.ctx, &GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		s.client.EXPECT().GetReport(s.ctx, int64(9)).Return(nil, errors.FromResponse(404, "", ""))

		_, err := s.orch.Get(s.ctx, &GetInput{ReportID: 9})
		s.True(errors.IsNotFound(err))
	})
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
