// Package paging accumulates pages of a filtered list. Loading more is
// always caller-initiated.
package paging

import "sync"

// FirstPage is the cursor after a reset
const FirstPage = 1

// Request describes one page fetch. It must be handed back unchanged to
// Apply or Fail.
type Request[F comparable] struct {
	Filter     F
	Page       int
	generation uint64
}

// Accumulator holds the list built so far for the active filter
type Accumulator[F comparable, T any] struct {
	mu         sync.Mutex
	filter     F
	items      []T
	page       int
	hasMore    bool
	loading    bool
	generation uint64
}

// New creates an empty accumulator for filter. Call Next to fetch page one.
func New[F comparable, T any](filter F) *Accumulator[F, T] {
	return &Accumulator[F, T]{
		filter:  filter,
		page:    FirstPage,
		hasMore: true,
	}
}

// SetFilter switches the filter, clearing the list and resetting the cursor.
// It returns the request for page one of the new filter. Setting the current
// filter again does nothing and returns false.
func (a *Accumulator[F, T]) SetFilter(filter F) (Request[F], bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if filter == a.filter {
		return Request[F]{}, false
	}

	a.filter = filter
	a.items = nil
	a.page = FirstPage
	a.hasMore = true
	a.generation++
	a.loading = true

	return a.request(), true
}

// Next returns the request for the next page. It returns false while a fetch
// is in flight or after an empty page ended the list.
func (a *Accumulator[F, T]) Next() (Request[F], bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loading || !a.hasMore {
		return Request[F]{}, false
	}
	a.loading = true

	return a.request(), true
}

// Apply records the items returned for req. An empty page ends the list.
// Responses for a superseded filter are dropped and Apply returns false.
func (a *Accumulator[F, T]) Apply(req Request[F], items []T) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.current(req) {
		return false
	}
	a.loading = false

	if len(items) == 0 {
		a.hasMore = false
		return true
	}

	a.items = append(a.items, items...)
	a.page++

	return true
}

// Fail clears the loading flag after a failed fetch. The cursor is kept so
// the same page can be requested again.
func (a *Accumulator[F, T]) Fail(req Request[F]) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.current(req) {
		return false
	}
	a.loading = false

	return true
}

// Items returns a copy of the accumulated list in arrival order
func (a *Accumulator[F, T]) Items() []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Filter returns the active filter
func (a *Accumulator[F, T]) Filter() F {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}

// Page returns the page the next fetch will request
func (a *Accumulator[F, T]) Page() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// HasMore reports whether another page may exist
func (a *Accumulator[F, T]) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasMore
}

// Loading reports whether a fetch is in flight
func (a *Accumulator[F, T]) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *Accumulator[F, T]) request() Request[F] {
	return Request[F]{Filter: a.filter, Page: a.page, generation: a.generation}
}

func (a *Accumulator[F, T]) current(req Request[F]) bool {
	return a.loading && req.generation == a.generation && req.Page == a.page && req.Filter == a.filter
}
