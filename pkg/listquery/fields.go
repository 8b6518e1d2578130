package listquery

import (
	"strings"
	"time"

	"golang.org/x/text/collate"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindTime
)

type sortableField[T any] struct {
	kind fieldKind
	str  func(T) string
	num  func(T) int64
	tim  func(T) time.Time
}

// Schema is the typed accessor table for one entity kind: which fields can
// be sorted on (and how their values compare) and which fields free-text
// search runs against. Nested fields are registered under their dotted name
// (e.g. "uploadedBy.name"); there is no runtime path traversal.
type Schema[T any] struct {
	sortable   map[string]sortableField[T]
	searchable []func(T) string
}

func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{sortable: make(map[string]sortableField[T])}
}

// SortableString registers a field whose values compare collation-aware.
func (s *Schema[T]) SortableString(name string, get func(T) string) *Schema[T] {
	s.sortable[name] = sortableField[T]{kind: kindString, str: get}
	return s
}

// SortableNumber registers a field whose values compare numerically.
func (s *Schema[T]) SortableNumber(name string, get func(T) int64) *Schema[T] {
	s.sortable[name] = sortableField[T]{kind: kindNumber, num: get}
	return s
}

// SortableTime registers a field whose values compare chronologically.
func (s *Schema[T]) SortableTime(name string, get func(T) time.Time) *Schema[T] {
	s.sortable[name] = sortableField[T]{kind: kindTime, tim: get}
	return s
}

// Searchable registers a field for case-insensitive substring search.
func (s *Schema[T]) Searchable(get func(T) string) *Schema[T] {
	s.searchable = append(s.searchable, get)
	return s
}

// comparator builds the ordering function for a request. An unregistered
// sort field returns nil: the caller leaves the slice untouched, which is
// the documented no-op behavior for unknown fields.
func (s *Schema[T]) comparator(field string, order SortOrder, col *collate.Collator) func(a, b T) int {
	f, ok := s.sortable[field]
	if !ok {
		return nil
	}

	var cmp func(a, b T) int
	switch f.kind {
	case kindString:
		cmp = func(a, b T) int { return col.CompareString(f.str(a), f.str(b)) }
	case kindNumber:
		cmp = func(a, b T) int {
			av, bv := f.num(a), f.num(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case kindTime:
		cmp = func(a, b T) int { return f.tim(a).Compare(f.tim(b)) }
	}

	if order == Desc {
		inner := cmp
		cmp = func(a, b T) int { return -inner(a, b) }
	}
	return cmp
}

// matches reports whether any searchable field contains needle. The needle
// must already be lowercased.
func (s *Schema[T]) matches(item T, needle string) bool {
	for _, get := range s.searchable {
		if strings.Contains(strings.ToLower(get(item)), needle) {
			return true
		}
	}
	return false
}
