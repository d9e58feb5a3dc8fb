package driven

import (
	"context"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// CatalogSource supplies the raw catalog records for one load.
// Implementations own the outer decoding (JSON syntax, SQLite access);
// the per-record strings are parsed later by the normaliser.
type CatalogSource interface {
	// Load reads every raw record, preserving the order the backing
	// format presents them in. Record order is significant: it fixes
	// the order of the normalised catalog.
	Load(ctx context.Context) ([]domain.RawRecord, error)

	// Describe returns a short human-readable description of the
	// source, e.g. "json file ./catalog.json".
	Describe() string
}
