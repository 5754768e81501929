package logging

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ValidLogLevels is the canonical set of level strings accepted by flags and
// environment configuration. Level strings are upper-case.
var ValidLogLevels = map[string]log.Level{
	"DEBUG": log.DebugLevel,
	"INFO":  log.InfoLevel,
	"WARN":  log.WarnLevel,
	"ERROR": log.ErrorLevel,
}

// IsValidLogLevel reports whether level is one of ValidLogLevels.
func IsValidLogLevel(level string) bool {
	_, ok := ValidLogLevels[level]
	return ok
}

// ValidateLogLevel returns an error for a level string outside ValidLogLevels.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s (valid: DEBUG, INFO, WARN, ERROR)", level)
	}
	return nil
}

// ParseLevel maps a level string to a log.Level, defaulting to INFO.
func ParseLevel(level string) log.Level {
	if l, ok := ValidLogLevels[level]; ok {
		return l
	}
	return log.InfoLevel
}

// FormatLevel maps a log.Level back to its canonical string. Levels above
// ERROR (suppressed output) render as "OFF".
func FormatLevel(level log.Level) string {
	for name, l := range ValidLogLevels {
		if l == level {
			return name
		}
	}
	return "OFF"
}
