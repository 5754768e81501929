// Package utils provides utility functions for the spraygen CLI.
// This file contains logging setup shared by every command handler.
package utils

import (
	"os"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// DEBUG=true forces debug output regardless of flags. Otherwise the
// --log-level flag applies and --quiet keeps only errors visible.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SetLevel(config.Global.LogLevel)
	if config.Global.Quiet {
		logging.SuppressOutput()
	}
}
