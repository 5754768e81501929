package logging

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// MaxRecordDisplay is the number of runes of an input record shown in
// non-debug logs.
const MaxRecordDisplay = 48

// FormatRecord formats an input record for logging based on the current log
// level. Debug logs show the full record; other levels truncate it to
// MaxRecordDisplay runes with a trailing "...".
//
// Usage: logging.Info("[+] %s -> %d usernames", logging.FormatRecord(rec.String()), n)
func FormatRecord(record string) string {
	if current().GetLevel() <= log.DebugLevel {
		return record
	}
	return truncate(record, MaxRecordDisplay)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "..."
		}
		i++
	}
	return s
}
