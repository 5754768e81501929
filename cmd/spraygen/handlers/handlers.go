// Package handlers provides command handler functions for spraygen.
//
// The package is organized as follows:
// - usernames.go: username and email generation from name lists
// - passwords.go: static password corpus building, merged with masks
// - mask.go: standalone mask expansion and counting
// - version.go: version output
//
// All handlers follow the same pattern: configure logging, load inputs,
// generate, stream the result to the configured sink, and print a run
// summary to stderr. Failures are logged where they happen and returned as
// short wrapped errors so cobra exits non-zero without printing usage.
package handlers

import (
	"errors"
	"iter"
	"time"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/cmd/spraygen/display"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/concave-dev/spraygen/internal/output"
	"github.com/spf13/cobra"
)

// ErrNothingGenerated reports a run that produced no candidates at all.
var ErrNothingGenerated = errors.New("nothing generated")

// writeCandidates streams seq to path and returns the sink name and the
// number of lines written.
func writeCandidates(path string, seq iter.Seq[string]) (string, int, error) {
	sink, err := output.Create(path)
	if err != nil {
		logging.Error("%v", err)
		return "", 0, err
	}

	written, err := sink.WriteAll(seq)
	closeErr := sink.Close()
	if err != nil {
		logging.Error("%v", err)
		return sink.Name, written, err
	}
	if closeErr != nil {
		logging.Error("%v", closeErr)
		return sink.Name, written, closeErr
	}

	return sink.Name, written, nil
}

// finish stamps the elapsed time and prints the summary.
func finish(cmd *cobra.Command, started time.Time, s display.Summary) {
	s.Duration = time.Since(started)
	display.RunSummary(cmd.ErrOrStderr(), config.Global.StatsFormat, s)
}

// capped yields at most n values of seq; a non-positive n means no cap. After
// the sequence has been consumed, the returned flag reports whether seq had
// values left over.
func capped(seq iter.Seq[string], n int) (iter.Seq[string], *bool) {
	truncated := new(bool)
	return func(yield func(string) bool) {
		emitted := 0
		for v := range seq {
			if n > 0 && emitted == n {
				*truncated = true
				return
			}
			if !yield(v) {
				return
			}
			emitted++
		}
	}, truncated
}
