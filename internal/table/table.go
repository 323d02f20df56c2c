package table

import (
	"fmt"
	"sync"

	"dcs/internal/aggregate"
)

// Store abstracts the gold table backend. Replace installs a full batch and
// removes whatever a previous batch wrote (overwrite semantics).
type Store interface {
	Replace(rows []aggregate.Row) error
	Get(key string) (aggregate.Row, bool)
	Range(fn func(row aggregate.Row) error) error
}

// MemoryStore is a thread-safe in-memory table.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]aggregate.Row
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]aggregate.Row)}
}

func (s *MemoryStore) Replace(rows []aggregate.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]aggregate.Row, len(rows))
	for _, r := range rows {
		s.data[r.Key()] = r
	}
	return nil
}

func (s *MemoryStore) Get(key string) (aggregate.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.data[key]
	return r, ok
}

// Range visits rows in map order. The disk backends iterate in key order;
// callers needing ordered output should use one of those.
func (s *MemoryStore) Range(fn func(row aggregate.Row) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data {
		if err := fn(r); err != nil {
			return fmt.Errorf("range callback failed: %w", err)
		}
	}
	return nil
}
