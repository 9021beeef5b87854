package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/enfa/pkg/domain"
)

// Store implements ports.ConversionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Conversion
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Conversion),
	}
}

// Save keeps a deep copy of the conversion.
func (s *Store) Save(ctx context.Context, id string, conv *domain.Conversion) error {
	copied := conv.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = copied
	return nil
}

// Load returns a copy so callers can't mutate stored data through the pointer.
func (s *Store) Load(ctx context.Context, id string) (*domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.data[id]
	if !ok {
		return nil, domain.ErrConversionNotFound
	}
	return conv.Clone(), nil
}

// Delete removes the conversion.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored conversion IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
