package memorystore

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrNotFound is returned by Find for unknown ids.
var ErrNotFound = errors.New("entity not found")

// Store keeps entities by id.
type Store[T any] struct {
	mu       sync.RWMutex
	entities map[string]T
}

// NewStore creates an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entities: make(map[string]T)}
}

// Save inserts or replaces the entity with the given id.
func (s *Store[T]) Save(ctx context.Context, id string, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities[id] = entity

	return nil
}

// Find returns the entity with the given id, or ErrNotFound.
func (s *Store[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.entities[id]
	if !ok {
		return zero, ErrNotFound
	}

	return entity, nil
}

// IDs returns all stored ids, sorted.
func (s *Store[T]) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.entities))
}
