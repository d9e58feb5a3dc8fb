package driven

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// ItemStore holds the normalised catalog for the lifetime of a session.
// The catalog is replaced wholesale by one load and is read-only
// afterwards. Implementations must hand back the exact *Item values they
// were given: the query engine deduplicates by item identity.
type ItemStore interface {
	// Replace swaps in a freshly normalised catalog.
	Replace(ctx context.Context, items []*domain.Item) error

	// All returns every item in normalisation order.
	// Returns domain.ErrNoCatalog if no catalog has been loaded.
	All(ctx context.Context) ([]*domain.Item, error)

	// Count returns the number of items held.
	Count(ctx context.Context) (int, error)
}
