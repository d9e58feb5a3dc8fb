package driving

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// SearchService answers aspect-set queries over the normalised catalog.
type SearchService interface {
	// Search returns the items matching the query, deduplicated, in the
	// order first matched. An empty query yields an empty result and a
	// nil error; callers should treat it as a usage error at the
	// boundary.
	Search(ctx context.Context, query domain.Query) ([]*domain.Item, error)
}
