package store

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory twin of SQLStore: same contract, no
// durability.  It backs unit tests and local runs without a database.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	docs  map[string]T
	order []string
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{docs: make(map[string]T)}
}

func (s *MemoryStore[T]) Insert(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.docs[id] = v
	return nil
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.docs[id]
	return v, ok, nil
}

func (s *MemoryStore[T]) Values(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out, nil
}

// Len reports the number of stored records.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// MemoryRunner serializes multi-store write sequences with a mutex.  Memory
// store writes cannot fail, so serialization alone gives the same
// all-or-nothing outcome the SQL runner provides through a transaction.
type MemoryRunner struct {
	mu sync.Mutex
}

func (r *MemoryRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx)
}
