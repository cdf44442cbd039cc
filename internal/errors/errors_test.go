package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "boss not found",
			expected: "NOT_FOUND: boss not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "not enough points",
			expected: "FAILED_PRECONDITION: not enough points",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("sqlite is locked")
	wrapped := errors.Wrap(baseErr, "failed to read last hp")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to read last hp", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("INTERNAL: failed to read last hp: sqlite is locked", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("no guild").WithMeta("guild_id", int64(7))
	wrapped := errors.Wrap(baseErr, "failed to load raid")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(int64(7), wrapped.Meta["guild_id"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("key missing").WithMeta("key", "session:access_token")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnauthenticated, "not logged in")

	s.Assert().Equal(errors.CodeUnauthenticated, wrapped.Code)
	s.Assert().Equal("session:access_token", wrapped.Meta["key"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	s.Assert().Nil(errors.Transport(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "outer"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatusRoundTrip() {
	for _, code := range []errors.Code{
		errors.CodeNotFound,
		errors.CodeAlreadyExists,
		errors.CodePermissionDenied,
		errors.CodeUnauthenticated,
		errors.CodeResourceExhausted,
		errors.CodeFailedPrecondition,
		errors.CodeUnavailable,
		errors.CodeInternal,
		errors.CodeInvalidArgument,
	} {
		s.Run(code.String(), func() {
			s.Assert().Equal(code, errors.FromHTTPStatus(code.HTTPStatus()))
		})
	}
}

func (s *ErrorsTestSuite) TestFromHTTPStatus() {
	testCases := []struct {
		status   int
		expected errors.Code
	}{
		{200, errors.CodeOK},
		{204, errors.CodeOK},
		{401, errors.CodeUnauthenticated},
		{403, errors.CodePermissionDenied},
		{422, errors.CodeInvalidArgument},
		{502, errors.CodeUnavailable},
		{504, errors.CodeDeadlineExceeded},
		{500, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprint(tc.status), func() {
			s.Assert().Equal(tc.expected, errors.FromHTTPStatus(tc.status))
		})
	}
}

func (s *ErrorsTestSuite) TestFromResponse() {
	err := errors.FromResponse(400, "이미 가입된 이메일입니다.", "DUPLICATE_EMAIL")

	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal(errors.OriginServer, errors.GetOrigin(err))
	s.Assert().Equal("DUPLICATE_EMAIL", err.Meta[errors.MetaErrorCode])
	s.Assert().Equal(400, err.Meta[errors.MetaStatus])

	s.Run("success false inside 200", func() {
		err := errors.FromResponse(200, "포인트가 부족합니다.", "")
		s.Assert().Equal(errors.CodeFailedPrecondition, err.Code)
		s.Assert().NotContains(err.Meta, errors.MetaErrorCode)
	})

	s.Run("empty message", func() {
		err := errors.FromResponse(401, "", "")
		s.Assert().Equal("로그인이 필요합니다.", err.Message)
		s.Assert().True(errors.IsAuthFailure(err))
	})
}

func (s *ErrorsTestSuite) TestTransport() {
	s.Assert().Equal(errors.CodeDeadlineExceeded,
		errors.Transport(context.DeadlineExceeded, "request failed").Code)
	s.Assert().Equal(errors.CodeCanceled,
		errors.Transport(fmt.Errorf("get: %w", context.Canceled), "request failed").Code)

	err := errors.Transport(fmt.Errorf("connection refused"), "request failed")
	s.Assert().Equal(errors.CodeUnavailable, err.Code)
	s.Assert().Equal(errors.OriginTransport, errors.GetOrigin(err))
}

func (s *ErrorsTestSuite) TestUserMessage() {
	const fallback = "오류가 발생했습니다."

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "server message verbatim",
			err:      errors.FromResponse(409, "이미 길드에 가입되어 있습니다.", ""),
			expected: "이미 길드에 가입되어 있습니다.",
		},
		{
			name:     "server message survives wrapping",
			err:      errors.Wrap(errors.FromResponse(409, "이미 길드에 가입되어 있습니다.", ""), "failed to join guild"),
			expected: "이미 길드에 가입되어 있습니다.",
		},
		{
			name:     "client rejection",
			err:      errors.Client(errors.CodeFailedPrecondition, "포인트 부족"),
			expected: "포인트 부족",
		},
		{
			name:     "transport failure",
			err:      errors.Transport(fmt.Errorf("dial tcp: refused"), "request failed"),
			expected: fallback,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			expected: fallback,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, errors.UserMessage(tc.err, fallback))
		})
	}
}
