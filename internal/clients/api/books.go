package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

// ListBestsellersInput selects one bestseller page
type ListBestsellersInput struct {
	// CategoryID 0 is the overall list
	CategoryID int
	// Page starts at 1
	Page int
}

func (c *client) SearchBooks(ctx context.Context, query string) ([]*entities.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.InvalidArgument("query cannot be empty")
	}

	var out []*entities.Book
	_, err := c.call(ctx, &request{
		method: http.MethodGet,
		path:   "/books/search",
		query:  url.Values{"query": {query}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListBestsellers(ctx context.Context, input *ListBestsellersInput) ([]*entities.Bestseller, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Page < 1 {
		return nil, errors.InvalidArgumentf("invalid page %d", input.Page)
	}

	path := "/books/bestsellers"
	if input.CategoryID != 0 {
		path = fmt.Sprintf("/books/bestsellers/%d", input.CategoryID)
	}

	var out []*entities.Bestseller
	_, err := c.call(ctx, &request{
		method: http.MethodGet,
		path:   path,
		query:  url.Values{"page": {strconv.Itoa(input.Page)}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetRecommendations(ctx context.Context) ([]*entities.Book, error) {
	var out []*entities.Book
	if _, err := c.call(ctx, &request{method: http.MethodGet, path: "/recommendations"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
