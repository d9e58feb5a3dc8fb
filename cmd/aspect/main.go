// Command aspect searches a static item catalog by aspect.
package main

import (
	"os"

	"github.com/arcanum-labs/aspect-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
