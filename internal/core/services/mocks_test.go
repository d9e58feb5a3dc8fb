package services

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// stubItemStore is a minimal in-memory driven.ItemStore for service tests.
type stubItemStore struct {
	items []*domain.Item
	err   error
}

func (s *stubItemStore) Replace(_ context.Context, items []*domain.Item) error {
	if s.err != nil {
		return s.err
	}
	s.items = items
	return nil
}

func (s *stubItemStore) All(_ context.Context) ([]*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubItemStore) Count(_ context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return len(s.items), nil
}

// stubCatalogSource is a canned driven.CatalogSource.
type stubCatalogSource struct {
	records []domain.RawRecord
	err     error
}

func (s *stubCatalogSource) Load(_ context.Context) ([]domain.RawRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubCatalogSource) Describe() string {
	return "stub source"
}
