// Package cli implements the cobra command tree for the aspect CLI.
// Commands talk to core services through the driving ports; all output
// goes through the cobra command so tests can capture it.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanum-labs/aspect-cli/internal/adapters/driven/catalog/jsonfile"
	catalogsqlite "github.com/arcanum-labs/aspect-cli/internal/adapters/driven/catalog/sqlite"
	configfile "github.com/arcanum-labs/aspect-cli/internal/adapters/driven/config/file"
	"github.com/arcanum-labs/aspect-cli/internal/adapters/driven/storage/memory"
	"github.com/arcanum-labs/aspect-cli/internal/core/domain"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driven"
	"github.com/arcanum-labs/aspect-cli/internal/core/ports/driving"
	"github.com/arcanum-labs/aspect-cli/internal/core/services"
	"github.com/arcanum-labs/aspect-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultCatalogPath is used when neither --catalog nor config provide one.
const defaultCatalogPath = "./catalog.json"

// Service graph, wired once per process. Tests inject fixtures via
// SetServices instead.
var (
	configStore    driven.ConfigStore
	itemStore      driven.ItemStore
	searchService  driving.SearchService
	aspectService  driving.AspectService
	catalogService driving.CatalogService

	catalogSource driven.CatalogSource
	catalogLoaded bool
)

var (
	flagCatalog string
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "aspect",
	Short: "Search a static item catalog by aspect",
	Long: `aspect answers "which catalog items expose this set of aspects" over a
small static catalog dumped to a JSON file or SQLite database.

The catalog is loaded and normalised once per invocation; duplicate
records sharing a name and an identical aspect set are merged into one
item carrying every observed variant.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCatalog, "catalog", "c", "",
		"catalog file (default: catalog.path from config, else "+defaultCatalogPath+")")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "",
		"catalog format: json or sqlite (default: inferred from extension)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false,
		"enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetServices injects a prebuilt service graph. Used by tests to run
// commands against fixture catalogs without touching the filesystem.
// The returned function restores the previous graph.
func SetServices(
	search driving.SearchService,
	aspects driving.AspectService,
	catalog driving.CatalogService,
	items driven.ItemStore,
	config driven.ConfigStore,
) func() {
	prevSearch, prevAspects, prevCatalog := searchService, aspectService, catalogService
	prevItems, prevConfig := itemStore, configStore
	prevLoaded, prevSource := catalogLoaded, catalogSource

	searchService = search
	aspectService = aspects
	catalogService = catalog
	itemStore = items
	configStore = config
	catalogLoaded = true
	catalogSource = nil

	return func() {
		searchService, aspectService, catalogService = prevSearch, prevAspects, prevCatalog
		itemStore, configStore = prevItems, prevConfig
		catalogLoaded, catalogSource = prevLoaded, prevSource
	}
}

// wire builds the default service graph if none has been injected.
func wire() error {
	if searchService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(os.Getenv("ASPECT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store := memory.NewItemStore()

	configStore = cfg
	itemStore = store
	searchService = services.NewSearchService(store)
	aspectService = services.NewAspectService(store)
	catalogService = services.NewCatalogService(services.NewNormaliser(), store)

	return nil
}

// ensureCatalog wires the services and performs the one-shot catalog
// load. Subsequent calls within the same process are no-ops.
func ensureCatalog(cmd *cobra.Command) error {
	if err := wire(); err != nil {
		return err
	}
	if catalogLoaded {
		return nil
	}

	source, err := resolveSource()
	if err != nil {
		return err
	}

	if _, err := catalogService.Load(cmd.Context(), source); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	catalogSource = source
	catalogLoaded = true
	return nil
}

// resolveSource picks the catalog file and format from flags, config and
// the path extension, in that order.
func resolveSource() (driven.CatalogSource, error) {
	path := flagCatalog
	if path == "" && configStore != nil {
		path = configStore.GetString(configfile.KeyCatalogPath)
	}
	if path == "" {
		path = defaultCatalogPath
	}

	format := flagFormat
	if format == "" && configStore != nil {
		format = configStore.GetString(configfile.KeyCatalogFormat)
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			format = "sqlite"
		default:
			format = "json"
		}
	}

	switch format {
	case "json":
		return jsonfile.New(path), nil
	case "sqlite":
		return catalogsqlite.New(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}
