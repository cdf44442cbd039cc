// Package explore implements book search and bestseller browsing
package explore

//go:generate mockgen -destination=mock/mock_service.go -package=exploremock github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/explore Service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/clients/api"
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/paging"
)

// Messages shown to the reader
const (
	MsgSearchFailed    = "검색 중 오류가 발생했습니다."
	MsgNoResults       = "검색 결과가 없습니다."
	MsgUnknownCategory = "알 수 없는 카테고리입니다."
	MsgEndOfList       = "더 이상 도서가 없습니다."
)

// ShortCategory trims an Aladin category path such as "국내도서>소설" to its
// second segment
func ShortCategory(name string) string {
	parts := strings.Split(name, ">")
	if len(parts) > 1 && parts[1] != "" {
		return parts[1]
	}
	return name
}

// Service defines the interface for the search and explore screens. The
// bestseller list accumulates across calls, so one instance serves one
// screen.
type Service interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
	Browse(ctx context.Context, input *BrowseInput) (*PageOutput, error)
	More(ctx context.Context) (*PageOutput, error)
}

// Config holds the dependencies for the explore orchestrator
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
	list   *paging.Accumulator[int, *entities.Bestseller]
	logger *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new explore orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		list:   paging.New[int, *entities.Bestseller](entities.Categories[0].ID),
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

// Search looks books up by title. A blank query makes no request.
func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return &SearchOutput{}, nil
	}

	books, err := o.client.SearchBooks(ctx, strings.TrimSpace(input.Query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}
	return &SearchOutput{Books: books, Searched: true}, nil
}

// Browse switches to a category and loads its first page. Selecting the
// active category again only loads if nothing has been fetched yet.
func (o *orchestrator) Browse(ctx context.Context, input *BrowseInput) (*PageOutput, error) {
	if input == nil {
		input = &BrowseInput{}
	}
	if _, ok := entities.CategoryName(input.CategoryID); !ok {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgUnknownCategory).
			WithMeta("category_id", input.CategoryID)
	}

	req, ok := o.list.SetFilter(input.CategoryID)
	if !ok {
		if o.list.Page() != paging.FirstPage || !o.list.HasMore() {
			return o.snapshot(false), nil
		}
		if req, ok = o.list.Next(); !ok {
			return o.snapshot(false), nil
		}
	}
	return o.fetch(ctx, req)
}

// More loads the next page of the active category. Nothing is requested
// while a fetch is in flight or after the list has ended.
func (o *orchestrator) More(ctx context.Context) (*PageOutput, error) {
	req, ok := o.list.Next()
	if !ok {
		return o.snapshot(false), nil
	}
	return o.fetch(ctx, req)
}

func (o *orchestrator) fetch(ctx context.Context, req paging.Request[int]) (*PageOutput, error) {
	books, err := o.client.ListBestsellers(ctx, &api.ListBestsellersInput{
		CategoryID: req.Filter,
		Page:       req.Page,
	})
	if err != nil {
		o.list.Fail(req)
		return nil, errors.Wrapf(err, "failed to list bestsellers page %d", req.Page)
	}

	if !o.list.Apply(req, books) {
		o.logger.Debug("dropped stale bestseller page",
			zap.Int("category_id", req.Filter),
			zap.Int("page", req.Page))
	}
	return o.snapshot(true), nil
}

func (o *orchestrator) snapshot(fetched bool) *PageOutput {
	return &PageOutput{
		CategoryID: o.list.Filter(),
		Books:      o.list.Items(),
		HasMore:    o.list.HasMore(),
		Fetched:    fetched,
	}
}
