package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

// Search display modes.
const (
	displayBlock   = "block"
	displayOneline = "oneline"
	displayDetail  = "detail"
)

// renderBlock prints the item name with its variants, then the requested
// aspects it carries, one per line.
func renderBlock(cmd *cobra.Command, item *domain.Item, requested []string) {
	cmd.Printf("%q%s\n", item.Name, variantSuffix(item))
	for _, aspect := range requested {
		if weight, ok := item.Aspects[aspect]; ok {
			cmd.Printf("  - %s: %d\n", aspect, weight)
		}
	}
	cmd.Println()
}

// renderOneline prints the requested aspect weights and the item on a
// single line.
func renderOneline(cmd *cobra.Command, item *domain.Item, requested []string) {
	var parts []string
	for _, aspect := range requested {
		if weight, ok := item.Aspects[aspect]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", aspect, weight))
		}
	}
	parts = append(parts, fmt.Sprintf("%q%s", item.Name, variantSuffix(item)))
	cmd.Println(strings.Join(parts, " "))
}

// renderDetail prints the item with every aspect it carries, sorted for
// stable output.
func renderDetail(cmd *cobra.Command, item *domain.Item) {
	cmd.Printf("%q\n", item.Name)
	if len(item.Variants) > 0 {
		label := "variant"
		if len(item.Variants) > 1 {
			label = "variants"
		}
		cmd.Printf("- With %s: %s\n", label, strings.Join(item.Variants, ", "))
	}
	cmd.Println("- With aspects:")
	for _, aspect := range sortedAspects(item) {
		cmd.Printf("    - %-14s%d\n", aspect+":", item.Aspects[aspect])
	}
	cmd.Println()
}

func variantSuffix(item *domain.Item) string {
	if len(item.Variants) == 0 {
		return ""
	}
	return " -- " + strings.Join(item.Variants, ", ")
}

func sortedAspects(item *domain.Item) []string {
	names := make([]string, 0, len(item.Aspects))
	for name := range item.Aspects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// outputItemsJSON marshals items for scripting consumers.
func outputItemsJSON(cmd *cobra.Command, items []*domain.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
