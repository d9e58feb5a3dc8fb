package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_items tool.
type SearchInput struct {
	Aspects []string `json:"aspects" jsonschema:"the aspect names to search for"`
	Any     bool     `json:"any,omitempty" jsonschema:"match items carrying any requested aspect instead of all of them"`
	Perfect bool     `json:"perfect,omitempty" jsonschema:"match items carrying only the requested aspects"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 25)"`
}

// SearchOutput is the output schema for the search_items tool.
type SearchOutput struct {
	Results []ItemOutput `json:"results"`
	Count   int          `json:"count"`
}

// ItemOutput represents a single catalog item.
type ItemOutput struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Variants []string       `json:"variants,omitempty"`
	Aspects  map[string]int `json:"aspects"`
}

// ListAspectsOutput is the output schema for the list_aspects tool.
type ListAspectsOutput struct {
	Aspects []string `json:"aspects"`
	Count   int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_items",
		Description: "Search the catalog for items carrying a set of aspects",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_aspects",
		Description: "List every aspect name occurring in the catalog",
	}, s.handleListAspects)
}

// handleSearch handles the search_items tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 25
	}

	mode := domain.MatchAll
	if input.Any {
		mode = domain.MatchAny
	}

	items, err := s.ports.Search.Search(ctx, domain.Query{
		Aspects: input.Aspects,
		Mode:    mode,
		Exact:   input.Perfect,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	if len(items) > limit {
		items = items[:limit]
	}

	output := SearchOutput{
		Results: make([]ItemOutput, len(items)),
		Count:   len(items),
	}

	for i, item := range items {
		output.Results[i] = ItemOutput{
			ID:       item.ID,
			Name:     item.Name,
			Variants: item.Variants,
			Aspects:  item.Aspects,
		}
	}

	return nil, output, nil
}

// handleListAspects handles the list_aspects tool invocation.
func (s *Server) handleListAspects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListAspectsOutput, error) {
	names, err := s.ports.Aspects.List(ctx)
	if err != nil {
		return nil, ListAspectsOutput{}, err
	}

	return nil, ListAspectsOutput{Aspects: names, Count: len(names)}, nil
}
