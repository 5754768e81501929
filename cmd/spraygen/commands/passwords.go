package commands

import (
	"github.com/spf13/cobra"
)

// Passwords command
var passwordsCmd = &cobra.Command{
	Use:   "passwords",
	Short: "Build a static password corpus",
	Long: `Build a password corpus from seasonal baselines, optional breach words and
variants of every username in the input file.

The corpus is sorted and duplicate-free. With --mask the mask expansion is
merged into the output as a stream, so large masks never need to fit in
memory. An unreadable input file is reported and the mask still runs.`,
	Example: `  # Corpus for harvested usernames
  spraygen passwords -i usernames.lst -o passwords.lst

  # Add year forms, breach words and leet spellings
  spraygen passwords -i usernames.lst -y 2024 --extra --leet

  # Corpus merged with a mask, capped at one million lines
  spraygen passwords -i usernames.lst --mask '?u?l?l?l?l2024!' --limit 1000000

  # Mask only
  spraygen passwords --mask 'Summer?d?d?s'`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetPasswordsCommand returns the passwords command for handler assignment
func GetPasswordsCommand() *cobra.Command {
	return passwordsCmd
}

// SetupPasswordsFlags configures flags for the passwords command
func SetupPasswordsFlags(cmd *cobra.Command, inputPtr, outputPtr, yearPtr *string,
	extraPtr, leetPtr *bool, maskPtr *string, strictPtr *bool, limitPtr *int, defaultOutput string) {
	cmd.Flags().StringVarP(inputPtr, "input", "i", "",
		"File of usernames or seed tokens, one per line (\"-\" for stdin)")
	cmd.Flags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output file (stdout when empty)")
	cmd.Flags().StringVarP(yearPtr, "year", "y", "",
		"Year appended to list words and variants")
	cmd.Flags().BoolVar(extraPtr, "extra", false,
		"Include the breach wordlist")
	cmd.Flags().BoolVar(leetPtr, "leet", false,
		"Add leet-speak variants of every candidate")
	cmd.Flags().StringVarP(maskPtr, "mask", "m", "",
		"Hashcat-style mask merged into the output (?u ?l ?d ?s)")
	cmd.Flags().BoolVar(strictPtr, "strict-mask", false,
		"Reject unknown placeholders and a trailing '?'")
	cmd.Flags().IntVar(limitPtr, "limit", 0,
		"Maximum number of lines written (0 = no cap)")
}
