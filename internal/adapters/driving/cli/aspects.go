package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var aspectsJSON bool

var aspectsCmd = &cobra.Command{
	Use:   "aspects",
	Short: "List every aspect in the catalog",
	Long:  `Lists the sorted universe of aspect names occurring anywhere in the catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runAspects,
}

func init() {
	aspectsCmd.Flags().BoolVar(&aspectsJSON, "json", false, "output aspect names as JSON")
	rootCmd.AddCommand(aspectsCmd)
}

func runAspects(cmd *cobra.Command, _ []string) error {
	if err := ensureCatalog(cmd); err != nil {
		return err
	}

	names, err := aspectService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing aspects: %w", err)
	}

	if aspectsJSON {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal aspects: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(names) == 0 {
		cmd.Println("The catalog contains no aspects.")
		return nil
	}

	cmd.Printf("Valid aspects are: %s\n", strings.Join(names, ", "))
	return nil
}
