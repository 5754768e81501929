// Package utils provides utility functions for the spraygen CLI.
package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDuration converts a run duration into a compact string for the run
// summary. Sub-second runs keep millisecond precision since most wordlists
// are generated well under a second.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

// FormatCount renders a candidate count with thousands separators. Counts
// beyond the int64 range are shown as the saturated maximum with a "+".
func FormatCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.Comma(math.MaxInt64) + "+"
	}
	return humanize.Comma(int64(n))
}
