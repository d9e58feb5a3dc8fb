package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/arcanum-labs/aspect-cli/internal/adapters/driven/config/file"
	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
)

var (
	searchAny     bool
	searchPerfect bool
	searchOneline bool
	searchDetail  bool
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [aspects...]",
	Short: "Search the catalog for items by aspect",
	Long: `Searches the catalog for items carrying every requested aspect.

With --any, each aspect is searched for individually and the results
are combined in request order. With --perfect, an item must carry no
aspects beyond the requested set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchAny, "any", false, "match items carrying any requested aspect instead of all of them")
	searchCmd.Flags().BoolVarP(&searchPerfect, "perfect", "p", false, "match items carrying ONLY the requested aspects")
	searchCmd.Flags().BoolVar(&searchOneline, "oneline", false, "display each result on one line")
	searchCmd.Flags().BoolVarP(&searchDetail, "detail", "d", false, "display every aspect of each result")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.MarkFlagsMutuallyExclusive("oneline", "detail", "json")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureCatalog(cmd); err != nil {
		return err
	}

	// Unknown aspects are advisory: the engine simply matches nothing
	// for them, so warn and carry on.
	unknown, err := aspectService.Unknown(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("checking aspects: %w", err)
	}
	if len(unknown) > 0 {
		cmd.PrintErrf("Warning: unknown aspects: %s (run \"aspect aspects\" to list valid names)\n",
			strings.Join(unknown, ", "))
	}

	mode := domain.MatchAll
	if searchAny {
		mode = domain.MatchAny
	}

	results, err := searchService.Search(cmd.Context(), domain.Query{
		Aspects: args,
		Mode:    mode,
		Exact:   searchPerfect,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputItemsJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No items found. Consider broadening the search or removing --perfect.")
		return nil
	}

	switch displayMode() {
	case displayOneline:
		for _, item := range results {
			renderOneline(cmd, item, args)
		}
	case displayDetail:
		for _, item := range results {
			renderDetail(cmd, item)
		}
	default:
		for _, item := range results {
			renderBlock(cmd, item, args)
		}
	}

	return nil
}

// displayMode resolves the search display mode from flags, falling back
// to the configured default.
func displayMode() string {
	switch {
	case searchOneline:
		return displayOneline
	case searchDetail:
		return displayDetail
	}
	if configStore != nil {
		switch configStore.GetString(configfile.KeyDisplayMode) {
		case displayOneline:
			return displayOneline
		case displayDetail:
			return displayDetail
		}
	}
	return displayBlock
}
