package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/arcanum-labs/aspect-cli/internal/adapters/driven/storage/memory"
	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/services"
)

// fixtureItems is a small catalog shared by the command tests.
func fixtureItems() []*domain.Item {
	return []*domain.Item{
		{ID: "1", Name: "Water Bottle", Variants: []string{domain.VariantPlaceholder, "bucket"}, Aspects: map[string]int{"aqua": 2}},
		{ID: "2", Name: "Thermal Potion", Aspects: map[string]int{"aqua": 2, "ignis": 1}},
		{ID: "3", Name: "Torch", Aspects: map[string]int{"ignis": 1, "lux": 2}},
	}
}

// setupTestServices installs a service graph over an in-memory fixture
// catalog. The returned cleanup restores the previous graph.
func setupTestServices() func() {
	store := memory.NewItemStore()
	_ = store.Replace(context.Background(), fixtureItems())

	return SetServices(
		services.NewSearchService(store),
		services.NewAspectService(store),
		services.NewCatalogService(services.NewNormaliser(), store),
		store,
		nil,
	)
}

// resetServices clears the wired graph so the next test starts cold.
func resetServices() {
	searchService = nil
	aspectService = nil
	catalogService = nil
	itemStore = nil
	configStore = nil
	catalogSource = nil
	catalogLoaded = false
}

// resetSearchFlags clears the sticky flag variables and cobra's
// per-flag Changed state between executions.
func resetSearchFlags() {
	searchAny = false
	searchPerfect = false
	searchOneline = false
	searchDetail = false
	searchJSON = false
	aspectsJSON = false
	flagCatalog = ""
	flagFormat = ""
	flagVerbose = false

	for _, name := range []string{"any", "perfect", "oneline", "detail", "json"} {
		if f := searchCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	if f := aspectsCmd.Flags().Lookup("json"); f != nil {
		f.Changed = false
	}
	for _, name := range []string{"catalog", "format", "verbose"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetSearchFlags()
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}
