// internal/repository/memory.go
package repository

import (
	"context"
	"sync"
)

type memoryRepository[T any] struct {
	mu      sync.RWMutex
	idOf    func(T) string
	order   []string
	records map[string]T
}

// NewMemory returns a Repository held in process memory.
func NewMemory[T any](idOf func(T) string) Repository[T] {
	return &memoryRepository[T]{
		idOf:    idOf,
		records: make(map[string]T),
	}
}

func (r *memoryRepository[T]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return record, nil
}

func (r *memoryRepository[T]) Put(_ context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.idOf(record)
	if _, exists := r.records[id]; !exists {
		r.order = append(r.order, id)
	}
	r.records[id] = record
	return nil
}

func (r *memoryRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}
