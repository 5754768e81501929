package commands

import (
	"github.com/spf13/cobra"
)

// Mask command
var maskCmd = &cobra.Command{
	Use:   "mask <mask>",
	Short: "Expand a hashcat-style mask",
	Long: `Expand a hashcat-style mask into every matching string, in ascending order.

Placeholders: ?u upper-case, ?l lower-case, ?d digit, ?s special (!@#$%^&*).
Any other character is a literal. Without --strict-mask an unknown
placeholder or trailing '?' is read literally; with it they are errors and
'??' is a literal '?'.`,
	Example: `  # Count candidates first
  spraygen mask '?u?l?l?l?l2024!' --count

  # Stream the first thousand candidates
  spraygen mask 'Winter?d?d?s' --limit 1000`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetMaskCommand returns the mask command for handler assignment
func GetMaskCommand() *cobra.Command {
	return maskCmd
}

// SetupMaskFlags configures flags for the mask command
func SetupMaskFlags(cmd *cobra.Command, outputPtr *string, strictPtr *bool, limitPtr *int, countPtr *bool) {
	cmd.Flags().StringVarP(outputPtr, "output", "o", "",
		"Output file (stdout when empty)")
	cmd.Flags().BoolVar(strictPtr, "strict-mask", false,
		"Reject unknown placeholders and a trailing '?'")
	cmd.Flags().IntVar(limitPtr, "limit", 0,
		"Maximum number of lines written (0 = no cap)")
	cmd.Flags().BoolVar(countPtr, "count", false,
		"Print the number of candidates instead of generating them")
}
