// Package listview implements the client side of the list-state protocol:
// an explicitly owned table-view state (pagination, sort, search, selection,
// loaded items) with pure transitions, and a controller that keeps that
// state synchronized with a paginated query endpoint.
package listview

import "github.com/listdeck/listdeck/pkg/listquery"

// PaginationState mirrors the metadata the query endpoint returns.
type PaginationState struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	RowsPerPage int `json:"rowsPerPage"`
}

// State is the full view state for one table. Transitions are pure: every
// With* method returns a new State and leaves the receiver untouched, so
// state handling is deterministic and unit-testable without any rendering
// or network environment.
type State[T any] struct {
	Items       []T
	Selected    Selection
	Pagination  PaginationState
	SortField   string
	SortOrder   listquery.SortOrder
	SearchQuery string
	Loading     bool
}

// NewState returns the state every fresh table view starts from.
func NewState[T any]() State[T] {
	return State[T]{
		Items:    []T{},
		Selected: Selection{},
		Pagination: PaginationState{
			RowsPerPage: listquery.DefaultRowsPerPage,
		},
		SortField: listquery.DefaultSortField,
		SortOrder: listquery.Asc,
	}
}

// WithSortField switches the sort column. Changing to a different field
// resets the order to ascending; setting the same field is a no-op.
func (s State[T]) WithSortField(field string) State[T] {
	if field != s.SortField {
		s.SortField = field
		s.SortOrder = listquery.Asc
	}
	return s
}

// WithToggledSortOrder flips asc and desc. Used when the requested sort
// field equals the current one.
func (s State[T]) WithToggledSortOrder() State[T] {
	if s.SortOrder == listquery.Asc {
		s.SortOrder = listquery.Desc
	} else {
		s.SortOrder = listquery.Asc
	}
	return s
}

// WithSearchQuery replaces the committed search text and returns the view
// to the first page, so a shrinking result set can never strand the view on
// a page past the end.
func (s State[T]) WithSearchQuery(q string) State[T] {
	s.SearchQuery = q
	s.Pagination.CurrentPage = 0
	return s
}

// WithPage moves to the given page.
func (s State[T]) WithPage(page int) State[T] {
	s.Pagination.CurrentPage = page
	return s
}

// WithRowsPerPage changes the page size and returns to the first page.
func (s State[T]) WithRowsPerPage(n int) State[T] {
	s.Pagination.RowsPerPage = n
	s.Pagination.CurrentPage = 0
	return s
}

// WithItems installs a fetched page of entities.
func (s State[T]) WithItems(items []T) State[T] {
	s.Items = items
	return s
}

// WithPagination installs the pagination metadata from a query response.
func (s State[T]) WithPagination(p PaginationState) State[T] {
	s.Pagination = p
	return s
}

// WithSelection replaces the selection set.
func (s State[T]) WithSelection(sel Selection) State[T] {
	s.Selected = sel
	return s
}

// PageRequest builds the query request the current state describes.
func (s State[T]) PageRequest() listquery.PageRequest {
	return listquery.PageRequest{
		PageNumber:  s.Pagination.CurrentPage,
		RowsPerPage: s.Pagination.RowsPerPage,
		SortField:   s.SortField,
		SortOrder:   s.SortOrder,
		Search:      s.SearchQuery,
	}
}
