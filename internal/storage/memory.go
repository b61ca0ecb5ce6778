package storage

import (
	"context"
	"maps"
	"sync"
)

// MemStore is an in-memory Store used as a test double. It honors the same
// contract as SQLiteStore; Update rolls the map back to a snapshot when fn
// fails.
type MemStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *MemStore) List(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.m), nil
}

func (s *MemStore) Update(ctx context.Context, fn func(ctx context.Context, st Store) error) error {
	s.mu.Lock()
	snapshot := maps.Clone(s.m)
	s.mu.Unlock()

	if err := fn(ctx, s); err != nil {
		s.mu.Lock()
		s.m = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
