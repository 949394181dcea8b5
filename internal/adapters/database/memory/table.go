package memory

import (
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
)

// table keeps records of one entity type keyed by handle, remembering insertion order.
// It is not safe for concurrent use; Store serializes access.
type table[T any] struct {
	rows  map[int64]T
	order []int64
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[int64]T), clone: clone}
}

func (t *table[T]) insert(id int64, v T) {
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

func (t *table[T]) replace(id int64, v T) {
	t.rows[id] = t.clone(v)
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// filter returns copies of matching rows in insertion order; never nil.
func (t *table[T]) filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		v := t.rows[id]
		if match == nil || match(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

func (t *table[T]) exists(match func(T) bool) bool {
	for _, id := range t.order {
		if match(t.rows[id]) {
			return true
		}
	}
	return false
}

func findIn[T any](s *Store, t *table[T], id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := t.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func listIn[T any](s *Store, t *table[T], match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return t.filter(match)
}

// createIn assigns the next shared handle, lets stamp set id and timestamps, and stores a copy.
func createIn[T any](s *Store, t *table[T], v T, stamp func(*T, int64, time.Time)) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	stamp(&v, id, s.now())
	t.insert(id, v)
	out := t.clone(v)
	return &out
}

// updateIn merges a change into an existing record; a missing id is never created.
func updateIn[T any](s *Store, t *table[T], id int64, apply func(*T, time.Time)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := t.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	apply(&v, s.now())
	t.replace(id, v)
	out := t.clone(v)
	return &out, nil
}

func deleteIn[T any](s *Store, t *table[T], id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.remove(id)
}
