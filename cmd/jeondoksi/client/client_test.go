package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apimock "github.com/jeondoksi/jeondoksi-cli/internal/clients/api/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/config"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/shop"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/notice"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/radar"
)

type ClientTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func (s *ClientTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	assumeYes = false
}

func (s *ClientTestSuite) TearDownTest() {
	assumeYes = false
}

func (s *ClientTestSuite) newApp(input string) *app {
	return &app{
		in:      bufio.NewReader(strings.NewReader(input)),
		out:     s.out,
		notices: notice.New(&notice.Config{Presenter: &terminalPresenter{out: s.out}}),
	}
}

func (s *ClientTestSuite) TestConfirm() {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "korean yes", input: "네\n", want: true},
		{name: "uppercase", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			a := s.newApp(tc.input)

			ok, err := a.confirm("길드 탈퇴", "정말 탈퇴하시겠습니까?")

			s.Require().NoError(err)
			s.Equal(tc.want, ok)
			_, open := a.notices.Current()
			s.False(open)
		})
	}
}

func (s *ClientTestSuite) TestConfirmAssumeYes() {
	assumeYes = true
	a := s.newApp("")

	ok, err := a.confirm("레이드 시작", "시작하시겠습니까?")

	s.Require().NoError(err)
	s.True(ok)
	s.Contains(s.out.String(), "확인(y) / 취소(N): y")
}

func (s *ClientTestSuite) TestFailMarksErrorShown() {
	a := s.newApp("")
	cause := errors.Client(errors.CodeInvalidArgument, "비공개 길드는 초대 코드가 필요합니다.")

	err := a.fail("가입 실패", cause, "가입 실패")

	s.True(Shown(err))
	s.True(errors.Is(err, cause))
	s.Contains(s.out.String(), "가입 실패")
	s.Contains(s.out.String(), "비공개 길드는 초대 코드가 필요합니다.")
}

func (s *ClientTestSuite) TestDrawWithoutPointsSkipsConfirmation() {
	for _, item := range []bool{false, true} {
		s.out.Reset()
		ctrl := gomock.NewController(s.T())
		client := apimock.NewMockClient(ctrl)
		client.EXPECT().GetMe(gomock.Any()).Return(&entities.User{Point: shop.DrawCost - 50}, nil)

		a := s.newApp("y\n")
		a.cfg = &config.Config{NoAnimation: true}
		a.api = client

		err := runDraw(context.Background(), a, item)

		s.True(Shown(err))
		s.Contains(s.out.String(), shop.MsgInsufficientPoints)
		s.NotContains(s.out.String(), "(y)")
		ctrl.Finish()
	}
}

func (s *ClientTestSuite) TestPromptKeepsFlagValue() {
	a := s.newApp("typed\n")

	v, err := a.prompt("ISBN", "9788937460449")
	s.Require().NoError(err)
	s.Equal("9788937460449", v)

	v, err = a.prompt("책 제목", "")
	s.Require().NoError(err)
	s.Equal("typed", v)
}

func (s *ClientTestSuite) TestReflectionReadsUntilDot() {
	reportContent, reportFile = "", ""
	a := s.newApp("첫 줄\n둘째 줄\n.\n남는 줄\n")

	content, err := a.reflection()

	s.Require().NoError(err)
	s.Equal("첫 줄\n둘째 줄", content)
}

func (s *ClientTestSuite) TestChoiceAnswer() {
	choices := []string{"데미안", "싱클레어", "베아트리체"}

	s.Equal("싱클레어", choiceAnswer("2", choices))
	s.Equal("4", choiceAnswer("4", choices))
	s.Equal("데미안", choiceAnswer("데미안", choices))
	s.Equal("1", choiceAnswer("1", nil))
}

func (s *ClientTestSuite) TestCategoryID() {
	id, err := categoryID("에세이")
	s.Require().NoError(err)
	s.Equal(55889, id)

	id, err = categoryID(" 987 ")
	s.Require().NoError(err)
	s.Equal(987, id)

	_, err = categoryID("만화")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestRadarSVG() {
	chart := radar.Default()
	svg := radarSVG(chart, chart.Data(radar.Stats{Logic: 80, Emotion: 40, Action: 60}))

	s.True(strings.HasPrefix(svg, "<svg"))
	s.Equal(len(chart.References())+1, strings.Count(svg, "<polygon"))
	s.Equal(3, strings.Count(svg, "<text"))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
