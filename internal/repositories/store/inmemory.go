package store

import (
	"context"
	"slices"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

// InMemory keeps values in a map. Useful for tests and throwaway sessions.
type InMemory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewInMemory() *InMemory {
	return &InMemory{
		values: make(map[string][]byte),
	}
}

func (s *InMemory) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, dnderr.NotFoundf("key '%s' not found", key).
			WithMeta("key", key)
	}

	// Return a copy to avoid external modifications
	return slices.Clone(value), nil
}

func (s *InMemory) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = slices.Clone(value)
	return nil
}

func (s *InMemory) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
