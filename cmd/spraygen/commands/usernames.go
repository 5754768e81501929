package commands

import (
	"github.com/spf13/cobra"
)

// Usernames command
var usernamesCmd = &cobra.Command{
	Use:   "usernames <names-file>",
	Short: "Generate username candidates from full names",
	Long: `Generate username candidates from a file of full names, one person per
line. The first and last whitespace-separated tokens are used as first and
last name; lines with a single token are skipped.

Each name is rendered through common corporate conventions such as
first.last, flast and f.last. With --leet every candidate also gets all of
its leet-speak spellings. With --domain email addresses are generated too.`,
	Example: `  # Write usernames.lst
  spraygen usernames employees.txt

  # Write to stdout
  spraygen usernames employees.txt -o -

  # Include leet variants and emails
  spraygen usernames employees.txt --leet --domain corp.example.com`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetUsernamesCommand returns the usernames command for handler assignment
func GetUsernamesCommand() *cobra.Command {
	return usernamesCmd
}

// SetupUsernamesFlags configures flags for the usernames command
func SetupUsernamesFlags(cmd *cobra.Command, outputPtr *string, leetPtr *bool, domainPtr *string, defaultOutput string) {
	cmd.Flags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output file (\"-\" for stdout)")
	cmd.Flags().BoolVar(leetPtr, "leet", false,
		"Add leet-speak variants")
	cmd.Flags().StringVar(domainPtr, "domain", "",
		"Also generate email addresses at this domain")
}
