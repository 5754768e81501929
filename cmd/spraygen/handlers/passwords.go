package handlers

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/concave-dev/spraygen/cmd/spraygen/config"
	"github.com/concave-dev/spraygen/cmd/spraygen/display"
	"github.com/concave-dev/spraygen/cmd/spraygen/utils"
	"github.com/concave-dev/spraygen/internal/corpus"
	"github.com/concave-dev/spraygen/internal/logging"
	"github.com/concave-dev/spraygen/internal/mask"
	"github.com/concave-dev/spraygen/internal/output"
	"github.com/concave-dev/spraygen/internal/seed"
	"github.com/spf13/cobra"
)

// HandlePasswords handles the passwords command. The corpus is built from the
// input tokens when an input is given; the mask, when given, is merged in as
// a sorted stream. An unavailable input is logged and the mask still runs.
func HandlePasswords(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	started := time.Now()

	summary := display.Summary{Command: "passwords", Mask: config.Passwords.Mask}
	var sources []iter.Seq[string]

	if config.Passwords.Input != "" {
		passwords, report, err := buildCorpus(config.Passwords.Input)
		summary.Source = report.Source
		summary.Lines = report.Lines
		summary.Valid = report.Valid
		summary.Invalid = report.Invalid

		switch {
		case errors.Is(err, seed.ErrSourceUnavailable) && config.Passwords.Mask != "":
			logging.Error("Failed to read %s, continuing with mask only: %v", config.Passwords.Input, err)
		case err != nil:
			logging.Error("Failed to read %s: %v", config.Passwords.Input, err)
			return fmt.Errorf("%w: %w", ErrNothingGenerated, err)
		default:
			logging.Info("Built corpus of %d passwords from %d tokens", len(passwords), report.Valid)
			sources = append(sources, slices.Values(passwords))
		}
	}

	if config.Passwords.Mask != "" {
		pattern, err := parseMask(config.Passwords.Mask, config.Passwords.StrictMask)
		if err != nil {
			return err
		}
		logging.Info("Merging mask %s (%s candidates)", pattern, utils.FormatCount(pattern.Count()))
		sources = append(sources, pattern.Expand())
	}

	if len(sources) == 0 {
		logging.Error("No passwords to generate")
		return ErrNothingGenerated
	}

	candidates, truncated := capped(output.MergeSorted(sources...), config.Passwords.Limit)
	sinkName, written, err := writeCandidates(config.Passwords.Output, candidates)
	if err != nil {
		return err
	}

	summary.Written = written
	summary.Truncated = *truncated
	summary.Output = sinkName

	logging.Success("Generated %d passwords into %s", written, sinkName)
	finish(cmd, started, summary)
	return nil
}

// buildCorpus reads the token file and builds the sorted corpus from it.
func buildCorpus(path string) ([]string, seed.Report, error) {
	logging.Info("Reading tokens from %s", path)

	records, report, err := seed.LoadTokens(path)
	if err != nil {
		return nil, report, err
	}

	tokens := seed.Tokens(records)
	if config.Global.Verbose {
		for _, token := range tokens {
			logging.Info("[+] %s", logging.FormatRecord(token))
		}
	}

	passwords := corpus.Build(tokens, corpus.Options{
		Year:         config.Passwords.Year,
		IncludeExtra: config.Passwords.Extra,
		Leet:         config.Passwords.Leet,
	})
	return passwords, report, nil
}

// parseMask parses s, logging failures.
func parseMask(s string, strict bool) (*mask.Pattern, error) {
	var opts []mask.Option
	if strict {
		opts = append(opts, mask.Strict())
	}

	pattern, err := mask.Parse(s, opts...)
	if err != nil {
		logging.Error("Invalid mask %q: %v", s, err)
		return nil, fmt.Errorf("invalid mask: %w", err)
	}
	return pattern, nil
}
