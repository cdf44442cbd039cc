package report

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
)

// SubmitInput defines the request for submitting a reflection
type SubmitInput struct {
	ISBN    string
	Title   string
	Content string
}

// SubmitOutput defines the response for submitting a reflection. It carries
// everything the results view shows.
type SubmitOutput struct {
	Report      *entities.ReportDetail
	Personality personality.Type
}

// ListOutput defines the response for listing the reader's reflections
type ListOutput struct {
	Reports []*entities.ReportSummary
}

// GetInput defines the request for loading one reflection
type GetInput struct {
	ReportID int64
}

// GetOutput defines the response for loading one reflection
type GetOutput struct {
	Report      *entities.ReportDetail
	Personality personality.Type
}
