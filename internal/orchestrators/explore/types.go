package explore

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// SearchInput defines the request for a title search
type SearchInput struct {
	Query string
}

// SearchOutput defines the response for a title search. Searched is false
// when the query was blank and nothing was requested.
type SearchOutput struct {
	Books    []*entities.Book
	Searched bool
}

// BrowseInput selects a bestseller category
type BrowseInput struct {
	CategoryID int
}

// PageOutput is the accumulated bestseller list after a fetch. Fetched is
// false when no request was made.
type PageOutput struct {
	CategoryID int
	Books      []*entities.Bestseller
	HasMore    bool
	Fetched    bool
}
