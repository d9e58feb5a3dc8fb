package services

import (
	"context"
	"fmt"

	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driving"
	"github.com/arcanum-labs/aspect-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService loads a catalog source into the session item store.
type CatalogService struct {
	normaliser *Normaliser
	items      driven.ItemStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(normaliser *Normaliser, items driven.ItemStore) *CatalogService {
	return &CatalogService{
		normaliser: normaliser,
		items:      items,
	}
}

// Load reads the source, normalises its records and replaces the session
// catalog. A *domain.FormatError from normalisation surfaces unwrapped so
// the boundary can report the offending record; nothing is installed on
// failure.
func (s *CatalogService) Load(ctx context.Context, source driven.CatalogSource) (int, error) {
	logger.Section("Catalog Load")
	logger.Debug("Source: %s", source.Describe())

	records, err := source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", source.Describe(), err)
	}
	logger.Debug("Read %d raw records", len(records))

	items, err := s.normaliser.Normalise(records)
	if err != nil {
		return 0, err
	}

	if err := s.items.Replace(ctx, items); err != nil {
		return 0, fmt.Errorf("installing catalog: %w", err)
	}

	logger.Info("Catalog loaded: %d items from %s", len(items), source.Describe())

	return len(items), nil
}
