// Package memory provides in-memory implementations of the storage
// interfaces. Stores copy on write and on read so callers can never
// mutate shared state.
package memory

import (
	"context"
	"sync"

	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage"
)

// SourceStore is an in-memory implementation of storage.SourceStore.
type SourceStore struct {
	mu    sync.RWMutex
	data  map[string]*domain.RawTable
	order []string
}

// NewSourceStore creates a new in-memory source store.
func NewSourceStore() *SourceStore {
	return &SourceStore{data: make(map[string]*domain.RawTable)}
}

// Put adds a raw table. Returns ErrDuplicateKey if the name exists.
func (s *SourceStore) Put(_ context.Context, t *domain.RawTable) error {
	if t == nil || t.Name == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[t.Name]; exists {
		return storage.ErrDuplicateKey
	}
	s.data[t.Name] = copyRawTable(t)
	s.order = append(s.order, t.Name)
	return nil
}

// Get retrieves a table by name. Returns ErrNotFound if absent.
func (s *SourceStore) Get(_ context.Context, name string) (*domain.RawTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.data[name]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyRawTable(t), nil
}

// List returns all tables in insertion order.
func (s *SourceStore) List(_ context.Context) ([]*domain.RawTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.RawTable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, copyRawTable(s.data[name]))
	}
	return out, nil
}

func copyRawTable(t *domain.RawTable) *domain.RawTable {
	c := domain.NewRawTable(t.Name)
	c.Dates = append(c.Dates, t.Dates...)
	c.ColumnOrder = append(c.ColumnOrder, t.ColumnOrder...)
	for name, vals := range t.Columns {
		v := make([]float64, len(vals))
		copy(v, vals)
		c.Columns[name] = v
	}
	return c
}
