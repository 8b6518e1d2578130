package listquery

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pagination is the metadata returned alongside every page of data.
// Invariant: TotalPages == ceil(TotalItems / RowsPerPage).
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	RowsPerPage int `json:"rowsPerPage"`
}

// Result is one page of entities plus its pagination metadata.
type Result[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Run executes a page request against the full entity list:
// filter, count, sort, slice. The input slice is not modified.
//
// The page is cut without clamping PageNumber against TotalPages; a request
// past the end returns an empty page, not an error.
func Run[T any](items []T, req PageRequest, schema *Schema[T]) Result[T] {
	if req.RowsPerPage < 1 {
		req.RowsPerPage = DefaultRowsPerPage
	}
	if req.PageNumber < 0 {
		req.PageNumber = 0
	}

	filtered := append([]T(nil), items...)
	if req.Search != "" {
		needle := strings.ToLower(req.Search)
		kept := filtered[:0]
		for _, item := range filtered {
			if schema.matches(item, needle) {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	totalItems := len(filtered)
	totalPages := (totalItems + req.RowsPerPage - 1) / req.RowsPerPage

	// Collators are not safe for concurrent use, so each run gets its own.
	col := collate.New(language.Und, collate.Loose)
	if cmp := schema.comparator(req.SortField, req.SortOrder, col); cmp != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	start := req.PageNumber * req.RowsPerPage
	end := start + req.RowsPerPage
	page := []T{}
	if start < totalItems {
		if end > totalItems {
			end = totalItems
		}
		page = append(page, filtered[start:end]...)
	}

	return Result[T]{
		Data: page,
		Pagination: Pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: req.PageNumber,
			RowsPerPage: req.RowsPerPage,
		},
	}
}
