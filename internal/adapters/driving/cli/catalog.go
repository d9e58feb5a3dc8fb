package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog commands",
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog source and size",
	Args:  cobra.NoArgs,
	RunE:  runCatalogInfo,
}

func init() {
	catalogCmd.AddCommand(catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogInfo(cmd *cobra.Command, _ []string) error {
	if err := ensureCatalog(cmd); err != nil {
		return err
	}

	if catalogSource != nil {
		cmd.Printf("Source:  %s\n", catalogSource.Describe())
	}

	count, err := itemStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting items: %w", err)
	}
	cmd.Printf("Items:   %d\n", count)

	names, err := aspectService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing aspects: %w", err)
	}
	cmd.Printf("Aspects: %d\n", len(names))

	if configStore != nil {
		cmd.Printf("Config:  %s\n", configStore.Path())
	}

	return nil
}
