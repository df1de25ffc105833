package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
)

// MemoryStore keeps slots in a map. Contents are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[models.Kind][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[models.Kind][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, kind models.Kind) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.slots[kind]), nil
}

func (s *MemoryStore) Write(ctx context.Context, kind models.Kind, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[kind] = bytes.Clone(data)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, kind models.Kind, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(bytes.Clone(s.slots[kind]))
	if err != nil {
		return err
	}
	s.slots[kind] = bytes.Clone(next)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.slots)
	return nil
}
