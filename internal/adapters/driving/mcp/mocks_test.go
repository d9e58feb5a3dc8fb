package mcp

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	items []*domain.Item
	query domain.Query
	err   error
}

func (m *mockSearchService) Search(_ context.Context, query domain.Query) ([]*domain.Item, error) {
	m.query = query
	return m.items, m.err
}

// mockAspectService is a mock implementation of driving.AspectService.
type mockAspectService struct {
	names   []string
	unknown []string
	err     error
}

func (m *mockAspectService) List(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockAspectService) Unknown(_ context.Context, _ []string) ([]string, error) {
	return m.unknown, m.err
}
