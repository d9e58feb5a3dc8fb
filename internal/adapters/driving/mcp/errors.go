// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the aspect catalog. It lets AI assistants query the catalog through the
// same driving ports the CLI uses.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingAspectService is returned when the aspect service is not provided.
var ErrMissingAspectService = errors.New("mcp: aspect service is required")
