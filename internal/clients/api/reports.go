package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

func (c *client) SubmitReport(ctx context.Context, input *entities.ReportSubmission) (*entities.ReportDetail, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out entities.ReportDetail
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/reports", body: input}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Internal("report submission returned no result")
	}
	return &out, nil
}

func (c *client) ListMyReports(ctx context.Context) ([]*entities.ReportSummary, error) {
	var out []*entities.ReportSummary
	if _, err := c.call(ctx, &request{method: http.MethodGet, path: "/reports/me"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetReport(ctx context.Context, reportID int64) (*entities.ReportDetail, error) {
	var out entities.ReportDetail
	ok, err := c.call(ctx, &request{method: http.MethodGet, path: fmt.Sprintf("/reports/%d", reportID)}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("report %d not found", reportID)
	}
	return &out, nil
}
