package repositories

import (
	"strconv"
	"sync"
)

// Entity is any record the store can hold.
type Entity interface {
	EntityID() string
}

// EntityStore is the in-memory mock persistence backing one entity kind.
// It holds the authoritative slice of records and hands out defensive
// copies, so callers can never mutate store state through a returned value.
type EntityStore[T Entity] struct {
	mu     sync.RWMutex
	items  []T
	seed   []T
	withID func(T, string) T
}

// NewEntityStore creates a store preloaded with seed. withID must return a
// copy of the entity with the given id assigned; the store uses it when
// appending new records.
func NewEntityStore[T Entity](seed []T, withID func(T, string) T) *EntityStore[T] {
	s := &EntityStore[T]{
		seed:   append([]T(nil), seed...),
		withID: withID,
	}
	s.items = append([]T(nil), seed...)
	return s
}

// List returns a copy of every record, unfiltered and in insertion order.
func (s *EntityStore[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// GetByID returns the record with the given id, or false if absent.
func (s *EntityStore[T]) GetByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add assigns the next id (one past the current count, as a string) and
// appends the record.
func (s *EntityStore[T]) Add(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = s.withID(item, strconv.Itoa(len(s.items)+1))
	s.items = append(s.items, item)
	return item
}

// Update replaces the record with the given id by apply's return value.
// It returns false if no record has that id.
func (s *EntityStore[T]) Update(id string, apply func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.EntityID() == id {
			s.items[i] = apply(item)
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id, reporting whether one existed.
func (s *EntityStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// BulkDelete removes every record whose id is in ids and returns the number
// removed. Unknown ids are ignored.
func (s *EntityStore[T]) BulkDelete(ids []string) int {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if _, drop := set[item.EntityID()]; !drop {
			kept = append(kept, item)
		}
	}
	deleted := len(s.items) - len(kept)
	s.items = kept
	return deleted
}

// Reset restores the store to its seed data. Intended for tests and the
// mock server's lifecycle.
func (s *EntityStore[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), s.seed...)
}

// Len returns the current record count.
func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
