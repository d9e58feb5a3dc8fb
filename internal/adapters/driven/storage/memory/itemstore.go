// Package memory provides in-memory storage adapters.
// The normalised catalog lives here for the duration of one invocation;
// nothing is persisted between runs.
package memory

import (
	"context"
	"sync"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is an in-memory implementation of driven.ItemStore.
// It stores the item pointers it is given, unchanged and in order, so the
// query engine's identity-based deduplication holds across reads.
type ItemStore struct {
	mu     sync.RWMutex
	items  []*domain.Item
	loaded bool
}

// NewItemStore creates a new in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{}
}

// Replace swaps in a freshly normalised catalog.
func (s *ItemStore) Replace(_ context.Context, items []*domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
	return nil
}

// All returns every item in normalisation order.
func (s *ItemStore) All(_ context.Context) ([]*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, domain.ErrNoCatalog
	}
	return s.items, nil
}

// Count returns the number of items held.
func (s *ItemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return 0, domain.ErrNoCatalog
	}
	return len(s.items), nil
}
