package handlers

import (
	"fmt"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/spf13/cobra"
)

// HandleVersion prints the spraygen version.
func HandleVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "spraygen %s\n", config.Version)
	return nil
}
