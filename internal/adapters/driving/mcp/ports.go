package mcp

import (
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers aspect-set queries.
	Search driving.SearchService

	// Aspects enumerates the aspect universe.
	Aspects driving.AspectService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Aspects == nil {
		return ErrMissingAspectService
	}
	return nil
}
