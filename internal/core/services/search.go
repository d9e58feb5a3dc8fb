package services

import (
	"context"
	"fmt"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driving"
	"github.com/arcanum-labs/aspect-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService evaluates aspect-set queries against the normalised catalog.
type SearchService struct {
	items driven.ItemStore
}

// NewSearchService creates a new search service.
func NewSearchService(items driven.ItemStore) *SearchService {
	return &SearchService{items: items}
}

// Search filters the catalog under the query's matching mode.
//
// Each aspect group is scanned against the catalog in item order; an item
// matches a group when it carries every aspect in the group and, with
// Exact set, no aspects beyond it. Results keep the order first matched
// and are deduplicated by item identity, not value equality: two
// structurally identical items normalised from distinct records both
// appear.
func (s *SearchService) Search(ctx context.Context, query domain.Query) ([]*domain.Item, error) {
	logger.Section("Search Execution")
	logger.Debug("Aspects: %v", query.Aspects)
	logger.Info("Mode: %s, exact=%t", query.EffectiveMode().Description(), query.Exact)

	// Defensive default for an empty query. Callers are expected to
	// reject it at the boundary as a usage error.
	if len(query.Aspects) == 0 {
		logger.Debug("Empty query, returning no results")
		return []*domain.Item{}, nil
	}

	items, err := s.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	seen := make(map[*domain.Item]bool)
	matched := []*domain.Item{}

	for _, group := range query.Groups() {
		for _, item := range items {
			if !item.HasAllAspects(group) {
				continue
			}
			if query.Exact && len(item.Aspects) != len(group) {
				continue
			}
			if seen[item] {
				continue
			}
			seen[item] = true
			matched = append(matched, item)
		}
	}

	logger.Debug("Matched %d of %d items", len(matched), len(items))

	return matched, nil
}
