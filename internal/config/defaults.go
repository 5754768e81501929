// Package config provides default configuration values shared across spraygen
// commands. Keeping them in one place keeps flag help, environment fallbacks
// and tests consistent.
package config

const (
	// DefaultLogLevel is the default log level for all commands
	DefaultLogLevel = "INFO"

	// DefaultUsernamesOutput is where `spraygen usernames` writes when -o is
	// not given, matching the file name most spraying guides expect
	DefaultUsernamesOutput = "usernames.lst"

	// DefaultPasswordsOutput is empty: password lists go to stdout unless -o
	// is given so they can be piped directly
	DefaultPasswordsOutput = ""

	// DefaultStatsFormat is the run summary format
	DefaultStatsFormat = "table"

	// EnvPrefix prefixes every environment override (SPRAYGEN_LOG_LEVEL, ...)
	EnvPrefix = "SPRAYGEN_"
)

// ValidStatsFormats lists the accepted --stats-format values.
var ValidStatsFormats = map[string]bool{
	"table": true,
	"json":  true,
	"none":  true,
}
