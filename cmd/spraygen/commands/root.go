// Package commands provides the command tree for spraygen.
//
// spraygen builds candidate credential lists for authorized password spraying
// assessments. Every command writes a newline-delimited wordlist to a file or
// stdout and logs progress to stderr, so output can be piped straight into a
// spraying tool.
//
// COMMAND STRUCTURE:
//   - usernames: Username and email candidates from a list of full names
//   - passwords: Static password corpus, optionally unioned with a mask
//   - mask: Exhaustive expansion of a hashcat-style mask
//   - version: Print the spraygen version
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "spraygen",
	Short: "Username and password candidate generator for password spraying",
	Long: `spraygen generates candidate usernames and passwords for authorized
password spraying and credential auditing engagements.

Usernames are derived from full names with common corporate naming
conventions. Passwords combine seasonal baselines, breach wordlists,
account-derived variants, leet-speak substitutions and hashcat-style masks.`,
	SilenceUsage: true,
	Example: `  # Generate usernames from a list of employee names
  spraygen usernames employees.txt

  # Add leet variants and email addresses
  spraygen usernames employees.txt --leet --domain corp.example.com

  # Build a password corpus for the harvested usernames
  spraygen passwords -i usernames.lst -y 2024 --extra -o passwords.lst

  # Union the corpus with a mask
  spraygen passwords -i usernames.lst --mask '?u?l?l?l?l2024!'

  # Count the candidates a mask would produce
  spraygen mask '?u?l?l?d?d' --count

  # Show debug logs
  spraygen --log-level=DEBUG -v usernames employees.txt`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(usernamesCmd)
	RootCmd.AddCommand(passwordsCmd)
	RootCmd.AddCommand(maskCmd)
	RootCmd.AddCommand(versionCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, verbosePtr *bool,
	quietPtr *bool, statsFormatPtr *string, defaultLogLevel, defaultStatsFormat string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Log every record as it is processed")
	rootCmd.PersistentFlags().BoolVarP(quietPtr, "quiet", "q", false,
		"Only log errors")
	rootCmd.PersistentFlags().StringVar(statsFormatPtr, "stats-format", defaultStatsFormat,
		"Run summary format on stderr: table, json, none")
}
