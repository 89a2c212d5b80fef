package kvstore

import (
	"context"
	"sync"

	"agencia_maker/internal/usecase/interfaces"
)

// MemoryStore keeps values in process memory. Used by tests and by
// STORAGE_BACKEND=memory for throwaway runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.IKeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}
