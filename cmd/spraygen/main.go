// Package main provides the entry point for spraygen.
//
// spraygen generates username and password candidate lists for authorized
// password spraying assessments. main wires the command tree from the
// commands package to the handlers package, registers flags bound to the
// config package and runs validation before every command.
package main

import (
	"os"

	"github.com/concave-dev/spraygen/cmd/spraygen/commands"
	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/cmd/spraygen/handlers"
	internalconfig "github.com/concave-dev/spraygen/internal/config"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel, &config.Global.Verbose,
		&config.Global.Quiet, &config.Global.StatsFormat,
		internalconfig.DefaultLogLevel, internalconfig.DefaultStatsFormat)

	// Setup command flags
	commands.SetupUsernamesFlags(commands.GetUsernamesCommand(),
		&config.Usernames.Output, &config.Usernames.Leet, &config.Usernames.Domain,
		internalconfig.DefaultUsernamesOutput)
	commands.SetupPasswordsFlags(commands.GetPasswordsCommand(),
		&config.Passwords.Input, &config.Passwords.Output, &config.Passwords.Year,
		&config.Passwords.Extra, &config.Passwords.Leet, &config.Passwords.Mask,
		&config.Passwords.StrictMask, &config.Passwords.Limit,
		internalconfig.DefaultPasswordsOutput)
	commands.SetupMaskFlags(commands.GetMaskCommand(),
		&config.Mask.Output, &config.Mask.StrictMask, &config.Mask.Limit, &config.Mask.Count)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	commands.GetUsernamesCommand().RunE = handlers.HandleUsernames
	commands.GetPasswordsCommand().RunE = handlers.HandlePasswords
	commands.GetMaskCommand().RunE = handlers.HandleMask
	commands.GetVersionCommand().RunE = handlers.HandleVersion
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
