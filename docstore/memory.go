package docstore

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-memory Store, mainly for tests and embedding.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Put stores a copy of data under name, replacing any previous document.
func (s *Memory) Put(name string, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.docs[name] = cp
	s.mu.Unlock()
}

// Fetch returns a copy of the stored document.
func (s *Memory) Fetch(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("memory store %q: %w", name, ErrNotFound)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}
