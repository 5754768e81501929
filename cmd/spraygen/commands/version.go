package commands

import (
	"github.com/spf13/cobra"
)

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the spraygen version",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetVersionCommand returns the version command for handler assignment
func GetVersionCommand() *cobra.Command {
	return versionCmd
}
