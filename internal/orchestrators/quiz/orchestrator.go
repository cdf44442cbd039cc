// Package quiz implements the quiz screen
package quiz

//go:generate mockgen -destination=mock/mock_service.go -package=quizmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/quiz Service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
)

// Messages shown to the reader
const (
	MsgMissingBook   = "잘못된 접근입니다."
	MsgLoadFailed    = "퀴즈를 불러오는 중 오류가 발생했습니다."
	MsgGradeFailed   = "채점 중 오류가 발생했습니다."
	MsgAnswerMissing = "답을 입력해주세요."
	MsgAnswerInvalid = "보기 중에서 답을 선택해주세요."
	MsgNoQuestions   = "퀴즈에 문제가 없습니다."
)

// Service defines the interface for the quiz screen
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)
}

// Config holds the dependencies for the quiz orchestrator
type Config struct {
	Client api.Client
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client api.Client
	logger *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new quiz orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

// Load fetches the quiz for a book. Question options arrive normalized.
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || strings.TrimSpace(input.ISBN) == "" {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgMissingBook)
	}

	quiz, err := o.client.GetQuiz(ctx, strings.TrimSpace(input.ISBN))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load quiz")
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, errors.Client(errors.CodeFailedPrecondition, MsgNoQuestions)
	}

	o.logger.Debug("quiz loaded",
		zap.Int64("quiz_id", quiz.QuizID),
		zap.Int("questions", len(quiz.Questions)))

	return &LoadOutput{Quiz: quiz}, nil
}

// Submit sends the answers for grading
func (o *orchestrator) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || len(input.Answers) == 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgAnswerMissing)
	}

	result, err := o.client.SubmitQuiz(ctx, &entities.QuizSubmission{
		QuizID:  input.QuizID,
		Answers: input.Answers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit quiz")
	}
	if result == nil {
		return nil, errors.Internal("quiz result was empty")
	}

	o.logger.Info("quiz graded",
		zap.Int64("quiz_id", input.QuizID),
		zap.Int("score", result.Score),
		zap.Int("gained_exp", result.GainedExp))

	return &SubmitOutput{Result: result, Passed: result.Passed()}, nil
}
