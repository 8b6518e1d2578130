package listview

import (
	"context"
	"sync"
	"time"

	"github.com/listdeck/listdeck/pkg/listquery"
)

// Querier is the query endpoint the controller fetches pages from.
type Querier[T any] interface {
	Query(ctx context.Context, req listquery.PageRequest) (listquery.Result[T], error)
}

// DefaultSearchDebounce is the quiet period applied to search input before
// it is committed into state, bounding request volume while typing.
const DefaultSearchDebounce = 300 * time.Millisecond

// Controller owns the view state for one table and keeps it synchronized
// with a query endpoint. Every change to page, page size, sort, or
// committed search issues exactly one query.
//
// In-flight queries are never cancelled; instead each fetch carries a
// monotonic sequence number and a response is discarded when a newer fetch
// has started since, so a stale response can never overwrite newer state.
type Controller[T any] struct {
	mu       sync.Mutex
	state    State[T]
	querier  Querier[T]
	idOf     func(T) string
	debounce time.Duration
	seq      uint64

	searchTimer *time.Timer
}

// NewController creates a controller with fresh default state. idOf extracts
// the entity id used for selection tracking.
func NewController[T any](querier Querier[T], idOf func(T) string) *Controller[T] {
	return &Controller[T]{
		state:    NewState[T](),
		querier:  querier,
		idOf:     idOf,
		debounce: DefaultSearchDebounce,
	}
}

// SetSearchDebounce overrides the search input quiet period.
func (c *Controller[T]) SetSearchDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

// State returns a snapshot of the current view state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.state
	snap.Items = append([]T(nil), c.state.Items...)
	snap.Selected = c.state.Selected.clone()
	return snap
}

// Refresh issues one query for the current state and reconciles the
// response. The loading flag is raised before the request and cleared on
// every exit path owned by this fetch; on failure the previously loaded
// items stay in place.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	req := c.state.PageRequest()
	c.state.Loading = true
	c.mu.Unlock()

	res, err := c.querier.Query(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// Superseded: a newer fetch owns the loading flag and the state.
		return nil
	}
	c.state.Loading = false
	if err != nil {
		return err
	}

	c.state = c.state.
		WithItems(res.Data).
		WithPagination(PaginationState(res.Pagination))
	return nil
}

// SortBy applies a header click: a new field sorts ascending, the current
// field flips direction. One query follows.
func (c *Controller[T]) SortBy(ctx context.Context, field string) error {
	c.mu.Lock()
	if field == c.state.SortField {
		c.state = c.state.WithToggledSortOrder()
	} else {
		c.state = c.state.WithSortField(field)
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetPage navigates to the given page and refetches.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.state = c.state.WithPage(page)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetRowsPerPage changes the page size, returns to the first page, and
// refetches.
func (c *Controller[T]) SetRowsPerPage(ctx context.Context, n int) error {
	c.mu.Lock()
	c.state = c.state.WithRowsPerPage(n)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// CommitSearch immediately commits search text into state (resetting to the
// first page) and refetches.
func (c *Controller[T]) CommitSearch(ctx context.Context, q string) error {
	c.mu.Lock()
	c.state = c.state.WithSearchQuery(q)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Search debounces raw search input: the text is committed (and a query
// issued) only after the configured quiet period without further calls.
func (c *Controller[T]) Search(ctx context.Context, q string) {
	c.mu.Lock()
	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	d := c.debounce
	if d <= 0 {
		c.mu.Unlock()
		_ = c.CommitSearch(ctx, q)
		return
	}
	c.searchTimer = time.AfterFunc(d, func() {
		_ = c.CommitSearch(ctx, q)
	})
	c.mu.Unlock()
}

// ToggleSelect flips selection of one entity id.
func (c *Controller[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.WithSelection(c.state.Selected.Toggle(id))
}

// ToggleSelectAll applies the page-scoped select-all checkbox against the
// currently loaded items.
func (c *Controller[T]) ToggleSelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, len(c.state.Items))
	for i, item := range c.state.Items {
		ids[i] = c.idOf(item)
	}
	c.state = c.state.WithSelection(c.state.Selected.ToggleAll(ids))
}

// ClearSelection drops every selected id.
func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.WithSelection(c.state.Selected.Clear())
}

// SelectedIDs returns the selected ids in stable order.
func (c *Controller[T]) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Selected.IDs()
}

// AfterMutation reconciles state after a successful mutation: selection
// entries for deleted ids are pruned, then the current query (same page,
// sort, and search) is re-issued to refresh items and pagination.
func (c *Controller[T]) AfterMutation(ctx context.Context, deletedIDs ...string) error {
	c.mu.Lock()
	c.state = c.state.WithSelection(c.state.Selected.Without(deletedIDs...))
	c.mu.Unlock()

	return c.Refresh(ctx)
}
