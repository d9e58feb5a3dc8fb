package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driving"
)

// Ensure AspectService implements the interface.
var _ driving.AspectService = (*AspectService)(nil)

// AspectService enumerates the universe of aspect names in the catalog.
type AspectService struct {
	items driven.ItemStore
}

// NewAspectService creates a new aspect service.
func NewAspectService(items driven.ItemStore) *AspectService {
	return &AspectService{items: items}
}

// List returns every distinct aspect name across the catalog, sorted.
func (s *AspectService) List(ctx context.Context) ([]string, error) {
	universe, err := s.universe(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(universe))
	for name := range universe {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Unknown returns the requested names absent from the catalog, in request
// order. Advisory only: the search engine treats unknown aspects as
// matching nothing rather than as errors.
func (s *AspectService) Unknown(ctx context.Context, requested []string) ([]string, error) {
	universe, err := s.universe(ctx)
	if err != nil {
		return nil, err
	}

	var unknown []string
	for _, name := range requested {
		if !universe[name] {
			unknown = append(unknown, name)
		}
	}

	return unknown, nil
}

func (s *AspectService) universe(ctx context.Context) (map[string]bool, error) {
	items, err := s.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	universe := make(map[string]bool)
	for _, item := range items {
		for name := range item.Aspects {
			universe[name] = true
		}
	}

	return universe, nil
}
