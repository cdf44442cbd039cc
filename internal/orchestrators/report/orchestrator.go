// Package report implements the reflection writing, library and detail screens
package report

//go:generate mockgen -destination=mock/mock_service.go -package=reportmock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/report Service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
)

// MinContentLength is the shortest accepted reflection, whitespace excluded
const MinContentLength = 50

// Messages shown for client-side rejections
const (
	MsgMissingBook  = "잘못된 접근입니다."
	MsgSubmitFailed = "제출 중 오류가 발생했습니다."
)

// TooShortMessage is shown when a reflection has fewer than
// MinContentLength characters
func TooShortMessage(length int) string {
	return fmt.Sprintf("독후감은 공백 제외 %d자 이상 작성해야 합니다.\n(현재: %d자)", MinContentLength, length)
}

// ContentLength counts the characters that count toward MinContentLength
func ContentLength(content string) int {
	return errors.CountContent(content)
}

// Service defines the interface for the report screens
type Service interface {
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)
	List(ctx context.Context) (*ListOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}

// Config holds the dependencies for the report orchestrator
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

// NewOrchestrator creates a new report orchestrator with the provided dependencies
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

// Submit sends a reflection for analysis. A missing book or a reflection
// under MinContentLength is rejected without a request.
func (o *orchestrator) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || strings.TrimSpace(input.ISBN) == "" {
		return nil, errors.Client(errors.CodeFailedPrecondition, MsgMissingBook)
	}

	length := ContentLength(input.Content)
	if length < MinContentLength {
		return nil, errors.Client(errors.CodeInvalidArgument, TooShortMessage(length)).
			WithMeta("content_length", length)
	}

	detail, err := o.client.SubmitReport(ctx, &entities.ReportSubmission{
		ISBN:    strings.TrimSpace(input.ISBN),
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit report")
	}
	if detail == nil {
		return nil, errors.Internal("report response was empty")
	}

	o.logger.Info("report submitted",
		zap.Int64("report_id", detail.ReportID),
		zap.String("isbn", input.ISBN),
		zap.String("type", detail.AnalysisResult.Type))

	return &SubmitOutput{
		Report:      detail,
		Personality: personality.Lookup(detail.AnalysisResult.Type),
	}, nil
}

// List loads the reader's library
func (o *orchestrator) List(ctx context.Context) (*ListOutput, error) {
	reports, err := o.client.ListMyReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}
	return &ListOutput{Reports: reports}, nil
}

// Get loads one reflection with its analysis
func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ReportID <= 0 {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgMissingBook)
	}

	detail, err := o.client.GetReport(ctx, input.ReportID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get report %d", input.ReportID)
	}
	if detail == nil {
		return nil, errors.NotFoundf("report %d not found", input.ReportID)
	}

	return &GetOutput{
		Report:      detail,
		Personality: personality.Lookup(detail.AnalysisResult.Type),
	}, nil
}
