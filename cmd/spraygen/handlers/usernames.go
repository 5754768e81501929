package handlers

import (
	"fmt"
	"slices"
	"time"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/cmd/spraygen/display"
	"github.com/concave-dev/spraygen/cmd/spraygen/utils"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/concave-dev/spraygen/internal/names"
	"github.com/concave-dev/spraygen/internal/seed"
	"github.com/concave-dev/spraygen/internal/variant"
	"github.com/spf13/cobra"
)

// HandleUsernames handles the usernames command. Every valid name line is
// rendered through the username templates (and email templates when a
// domain is set); invalid lines are counted and skipped.
func HandleUsernames(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	started := time.Now()

	path := args[0]
	logging.Info("Reading names from %s", path)

	records, report, err := seed.LoadNames(path, func(err error) {
		if config.Global.Verbose {
			logging.Warn("Skipping %v", err)
		}
	})
	if err != nil {
		logging.Error("Failed to read names: %v", err)
		return fmt.Errorf("failed to read names: %w", err)
	}

	usernames, invalid := generateUsernames(records)
	report.Valid -= invalid
	report.Invalid += invalid

	logging.Debug("Processed %d/%d lines (%d invalid)", report.Valid, report.Lines, report.Invalid)

	if usernames.Len() == 0 {
		logging.Error("No valid names in %s", path)
		return fmt.Errorf("%w: no valid names in %s", ErrNothingGenerated, path)
	}

	sinkName, written, err := writeCandidates(config.Usernames.Output, slices.Values(usernames.Sorted()))
	if err != nil {
		return err
	}

	logging.Success("Generated %d usernames from %d names into %s", written, report.Valid, sinkName)
	finish(cmd, started, display.Summary{
		Command: "usernames",
		Source:  report.Source,
		Lines:   report.Lines,
		Valid:   report.Valid,
		Invalid: report.Invalid,
		Written: written,
		Output:  sinkName,
	})
	return nil
}

// generateUsernames unions the candidates of every record and returns the
// number of records the name generator rejected.
func generateUsernames(records []seed.Record) (*variant.Set, int) {
	all := variant.New()
	invalid := 0

	for _, rec := range records {
		generated, err := names.UsernamesFor(rec.First, rec.Last, config.Usernames.Leet)
		if err != nil {
			invalid++
			if config.Global.Verbose {
				logging.Warn("Skipping line %d: %v", rec.Line, err)
			}
			continue
		}

		if config.Usernames.Domain != "" {
			emails, err := names.EmailsFor(rec.First, rec.Last, config.Usernames.Domain, config.Usernames.Leet)
			if err != nil {
				invalid++
				if config.Global.Verbose {
					logging.Warn("Skipping line %d: %v", rec.Line, err)
				}
				continue
			}
			generated.Union(emails)
		}

		if config.Global.Verbose {
			logging.Info("[+] %s -> %d usernames", logging.FormatRecord(rec.String()), generated.Len())
		}
		all.Union(generated)
	}

	return all, invalid
}
