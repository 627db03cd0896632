package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory KeyValue backend for tests and ephemeral
// runs. FailSets, when set, makes every Set return that error so callers'
// degraded paths can be exercised.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	FailSets error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSets != nil {
		return s.FailSets
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
