// Package config provides configuration management for the spraygen CLI.
//
// Values come from three layers, highest precedence first: explicitly set
// command-line flags, SPRAYGEN_* environment variables (optionally loaded from
// a .env file in the working directory), and the defaults registered with the
// flags.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/concave-dev/spraygen/internal/config"
	"github.com/concave-dev/spraygen/internal/version"
	"github.com/joho/godotenv"
)

// Version returns the current spraygen version from the centralized version package
var Version = version.Version

// Global holds the global CLI configuration
var Global struct {
	LogLevel    string // Log level for CLI operations
	Verbose     bool   // Report every record as it is processed
	Quiet       bool   // Only log errors
	StatsFormat string // Run summary format: table, json, none
}

// Usernames holds the usernames command configuration
var Usernames struct {
	Output string // Output file (default usernames.lst, "-" for stdout)
	Leet   bool   // Add leet-speak variants
	Domain string // Also generate email addresses at this domain
}

// Passwords holds the passwords command configuration
var Passwords struct {
	Input      string // File of usernames or seed tokens, one per line
	Output     string // Output file (stdout when empty)
	Year       string // Year appended to list words and variants
	Extra      bool   // Include the breach wordlist
	Leet       bool   // Add leet-speak variants of every candidate
	Mask       string // Hashcat-style mask unioned into the output
	StrictMask bool   // Reject malformed mask placeholders
	Limit      int    // Maximum number of lines written (0 = no cap)
}

// Mask holds the mask command configuration
var Mask struct {
	Output     string // Output file (stdout when empty)
	StrictMask bool   // Reject malformed mask placeholders
	Limit      int    // Maximum number of lines written (0 = no cap)
	Count      bool   // Print the candidate count instead of generating
}

// Environment mirrors the supported SPRAYGEN_* overrides.
type Environment struct {
	LogLevel string `env:"LOG_LEVEL"`
	Domain   string `env:"DOMAIN"`
	Year     string `env:"YEAR"`
	Output   string `env:"OUTPUT"`
}

// ErrParsingEnvironment wraps failures to read SPRAYGEN_* variables.
var ErrParsingEnvironment = errors.New("failed to parse environment")

// LoadEnvironment reads SPRAYGEN_* variables, loading ./.env first when it
// exists. Variables already present in the process environment win over the
// .env file.
func LoadEnvironment() (Environment, error) {
	// The .env file is optional
	_ = godotenv.Load()

	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Prefix: internalconfig.EnvPrefix}); err != nil {
		return Environment{}, fmt.Errorf("%w: %w", ErrParsingEnvironment, err)
	}
	return e, nil
}
