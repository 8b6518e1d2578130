// Package listquery implements the read side of the list-state protocol:
// a paginated query over an in-memory entity slice with free-text search,
// typed field sorting, and pagination metadata.
package listquery

import (
	"net/url"
	"strconv"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Default request values applied when a parameter is absent or malformed.
const (
	DefaultRowsPerPage = 10
	DefaultSortField   = "name"
)

// PageRequest describes one page query: which slice of the collection to
// return and how to filter and order it first.
type PageRequest struct {
	PageNumber  int       `json:"pageNumber"`
	RowsPerPage int       `json:"rowsPerPage"`
	SortField   string    `json:"sortField"`
	SortOrder   SortOrder `json:"sortOrder"`
	Search      string    `json:"search,omitempty"`
}

// DefaultPageRequest returns the request every fresh table view starts from.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		PageNumber:  0,
		RowsPerPage: DefaultRowsPerPage,
		SortField:   DefaultSortField,
		SortOrder:   Asc,
	}
}

// ParsePageRequest reads pagination parameters from URL query values.
// Malformed or out-of-range numerics fall back to the defaults rather than
// erroring; an unknown sort order falls back to ascending.
func ParsePageRequest(values url.Values) PageRequest {
	req := DefaultPageRequest()

	if v := values.Get("rowsPerPage"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.RowsPerPage = n
		}
	}
	if v := values.Get("pageNumber"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			req.PageNumber = n
		}
	}
	if v := values.Get("sortField"); v != "" {
		req.SortField = v
	}
	if v := SortOrder(values.Get("sortOrder")); v == Asc || v == Desc {
		req.SortOrder = v
	}
	req.Search = values.Get("search")

	return req
}

// Values encodes the request back into URL query parameters, the inverse of
// ParsePageRequest. Used by HTTP clients of the query endpoint.
func (r PageRequest) Values() url.Values {
	values := url.Values{}
	values.Set("rowsPerPage", strconv.Itoa(r.RowsPerPage))
	values.Set("pageNumber", strconv.Itoa(r.PageNumber))
	values.Set("sortField", r.SortField)
	values.Set("sortOrder", string(r.SortOrder))
	if r.Search != "" {
		values.Set("search", r.Search)
	}
	return values
}
