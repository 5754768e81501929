// Package logging provides structured, colorful logging for spraygen runs.
//
// Every log line goes to stderr (or a log file) so that stdout stays a clean
// wordlist sink that can be piped straight into a spraying tool. Levels are
// color-coded with lipgloss styles: DEBUG (purple), INFO (blue), WARN
// (yellow), ERROR (red) and a SUCCESS variant of INFO (green).
//
// The printf-style helpers (Info, Warn, Error, Debug, Success) are safe to call
// before any configuration; CLI commands adjust verbosity through SetLevel,
// SuppressOutput and RestoreOutput.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	mu sync.Mutex

	// logger writes every level; stderr by default
	logger = newLogger(os.Stderr)

	// output is the current destination, reused when loggers are recreated
	output io.Writer = os.Stderr
)

// setupCustomStyles creates the color scheme for log levels. The colors read
// well on both light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// newLogger builds a styled logger writing to w at INFO level.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.InfoLevel,
	})
	l.SetStyles(setupCustomStyles())
	return l
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Info logs progress and summary messages.
func Info(format string, v ...any) {
	current().Info(fmt.Sprintf(format, v...))
}

// Warn logs recoverable problems such as skipped input records.
func Warn(format string, v ...any) {
	current().Warn(fmt.Sprintf(format, v...))
}

// Error logs failures that abort a source or a command.
func Error(format string, v ...any) {
	current().Error(fmt.Sprintf(format, v...))
}

// Debug logs detailed tracing for troubleshooting.
func Debug(format string, v ...any) {
	current().Debug(fmt.Sprintf(format, v...))
}

// Success logs a completed operation in green. It uses INFO level internally
// so it is filtered exactly like Info.
func Success(format string, v ...any) {
	l := current()
	if l.GetLevel() > log.InfoLevel {
		return
	}

	mu.Lock()
	w := output
	mu.Unlock()

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))

	tmp := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tmp.SetStyles(styles)
	tmp.Info(fmt.Sprintf(format, v...))
}

// SetLevel sets the minimum level from a canonical level string. Unknown
// strings fall back to INFO.
func SetLevel(level string) {
	current().SetLevel(ParseLevel(level))
}

// GetLevel returns the current minimum level as its canonical string.
func GetLevel() string {
	return FormatLevel(current().GetLevel())
}

// SetOutput redirects all log output to w. A nil w suppresses logging
// entirely.
func SetOutput(w io.Writer) {
	if w == nil {
		current().SetLevel(log.FatalLevel + 1)
		return
	}

	mu.Lock()
	level := logger.GetLevel()
	output = w
	logger = newLogger(w)
	logger.SetLevel(level)
	mu.Unlock()
}

// SuppressOutput keeps only ERROR logs visible. Used by the CLI for quiet runs.
func SuppressOutput() {
	current().SetLevel(log.ErrorLevel)
}

// RestoreOutput resets logging to stderr at INFO level.
func RestoreOutput() {
	mu.Lock()
	output = os.Stderr
	logger = newLogger(os.Stderr)
	mu.Unlock()
}
