package driving

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
)

// CatalogService loads and normalises a catalog into the item store.
type CatalogService interface {
	// Load reads the source, normalises its records and replaces the
	// session catalog. Returns the number of canonical items, or a
	// *domain.FormatError if any record fails to parse (the whole load
	// aborts; no partial catalog is installed).
	Load(ctx context.Context, source driven.CatalogSource) (int, error)
}
