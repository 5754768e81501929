// Package config provides configuration management for the spraygen CLI.
package config

import (
	"fmt"

	internalconfig "github.com/concave-dev/spraygen/internal/config"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/concave-dev/spraygen/internal/validate"
	"github.com/spf13/cobra"
)

// flagSetter reports whether a flag was set explicitly on the command line.
type flagSetter interface {
	Changed(name string) bool
}

// ValidateGlobalFlags applies environment overrides and validates all flags
// before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	e, err := LoadEnvironment()
	if err != nil {
		logging.Error("%v", err)
		return err
	}
	ApplyEnvironment(cmd.Flags(), e)

	if err := ValidateLogLevel(); err != nil {
		return err
	}
	if err := ValidateStatsFormat(); err != nil {
		return err
	}
	if Global.Verbose && Global.Quiet {
		logging.Error("--verbose and --quiet are mutually exclusive")
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	switch cmd.Name() {
	case "usernames":
		return ValidateUsernames()
	case "passwords":
		return ValidatePasswords()
	case "mask":
		return validate.Limit(Mask.Limit)
	}
	return nil
}

// ApplyEnvironment copies non-empty environment values into every option
// whose flag was not set explicitly
func ApplyEnvironment(flags flagSetter, e Environment) {
	if e.LogLevel != "" && !flags.Changed("log-level") {
		Global.LogLevel = e.LogLevel
	}
	if e.Domain != "" && !flags.Changed("domain") {
		Usernames.Domain = e.Domain
	}
	if e.Year != "" && !flags.Changed("year") {
		Passwords.Year = e.Year
	}
	if e.Output != "" && !flags.Changed("output") {
		Usernames.Output = e.Output
		Passwords.Output = e.Output
		Mask.Output = e.Output
	}
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return err
	}
	return nil
}

// ValidateStatsFormat validates the --stats-format flag
func ValidateStatsFormat() error {
	if !internalconfig.ValidStatsFormats[Global.StatsFormat] {
		logging.Error("Invalid stats format '%s' - valid formats are: table, json, none", Global.StatsFormat)
		return fmt.Errorf("invalid stats format - valid: table, json, none")
	}
	return nil
}

// ValidateUsernames validates the usernames command flags
func ValidateUsernames() error {
	if err := validate.Domain(Usernames.Domain); err != nil {
		logging.Error("Invalid --domain: %v", err)
		return fmt.Errorf("invalid domain: %w", err)
	}
	if err := validate.ValidateRequiredString(Usernames.Output, "output"); err != nil {
		logging.Error("Invalid --output: %v", err)
		return err
	}
	return nil
}

// ValidatePasswords validates the passwords command flags
func ValidatePasswords() error {
	if err := validate.Year(Passwords.Year); err != nil {
		logging.Error("Invalid --year: %v", err)
		return fmt.Errorf("invalid year: %w", err)
	}
	if err := validate.Limit(Passwords.Limit); err != nil {
		logging.Error("Invalid --limit: %v", err)
		return err
	}
	if Passwords.Input == "" && Passwords.Mask == "" {
		logging.Error("No passwords to generate - provide either --input or --mask")
		return fmt.Errorf("provide either --input or --mask")
	}
	return nil
}
