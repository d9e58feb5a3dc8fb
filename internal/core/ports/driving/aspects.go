package driving

import "context"

// AspectService exposes the universe of aspect names in the catalog.
type AspectService interface {
	// List returns every distinct aspect name, sorted.
	List(ctx context.Context) ([]string, error)

	// Unknown returns the requested names that do not occur anywhere in
	// the catalog, in request order. Advisory only: querying an unknown
	// aspect is not an error, it simply matches nothing.
	Unknown(ctx context.Context, requested []string) ([]string, error)
}
