// Package display provides run summary formatting for spraygen.
//
// Summaries go to stderr so stdout stays a clean wordlist. The table format
// uses text/tabwriter; the json format emits one indented object per run for
// scripting. The none format prints nothing.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/concave-dev/spraygen/cmd/spraygen/utils"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/dustin/go-humanize"
)

// Summary describes one completed generation run.
type Summary struct {
	Command   string        `json:"command"`
	Source    string        `json:"source,omitempty"`
	Lines     int           `json:"lines"`
	Valid     int           `json:"valid"`
	Invalid   int           `json:"invalid"`
	Mask      string        `json:"mask,omitempty"`
	Written   int           `json:"written"`
	Truncated bool          `json:"truncated"`
	Output    string        `json:"output"`
	Duration  time.Duration `json:"-"`
	Elapsed   string        `json:"elapsed"`
}

// RunSummary writes s to w in the given format: table, json or none.
func RunSummary(w io.Writer, format string, s Summary) {
	s.Elapsed = utils.FormatDuration(s.Duration)

	switch format {
	case "none":
		return
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
		}
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		defer tw.Flush()

		fmt.Fprintf(tw, "COMMAND:\t%s\n", s.Command)
		if s.Source != "" {
			fmt.Fprintf(tw, "SOURCE:\t%s\n", s.Source)
			fmt.Fprintf(tw, "RECORDS:\t%s valid, %s invalid (%s lines)\n",
				humanize.Comma(int64(s.Valid)), humanize.Comma(int64(s.Invalid)), humanize.Comma(int64(s.Lines)))
		}
		if s.Mask != "" {
			fmt.Fprintf(tw, "MASK:\t%s\n", s.Mask)
		}
		written := humanize.Comma(int64(s.Written))
		if s.Truncated {
			written += " (limit reached)"
		}
		fmt.Fprintf(tw, "WRITTEN:\t%s\n", written)
		fmt.Fprintf(tw, "OUTPUT:\t%s\n", s.Output)
		fmt.Fprintf(tw, "ELAPSED:\t%s\n", s.Elapsed)
	}
}
