package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps slots in a map. Used in tests and usable as a
// throwaway backend when no database is configured.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.slots[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[key] = raw
	s.mu.Unlock()
	return nil
}
