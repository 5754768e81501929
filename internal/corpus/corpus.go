// Package corpus builds static password lists for spraying runs.
//
// A corpus starts from an embedded baseline of seasonal and lazy default
// passwords, optionally adds year-suffixed forms and an embedded breach
// wordlist, folds in token-derived variants from names.PasswordVariantsFor for
// every supplied username, and finally may run every accumulated string
// through substitute.PasswordLeet expansion.
//
// Wordlists are embedded from .txt files at compile time via go:embed. Edit
// wordlists/baseline.txt and wordlists/breach.txt to change them; blank lines
// and lines starting with # are ignored.
package corpus

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/concave-dev/spraygen/internal/names"
	"github.com/concave-dev/spraygen/internal/substitute"
	"github.com/concave-dev/spraygen/internal/variant"
)

//go:embed wordlists/baseline.txt
var baselineRaw string

//go:embed wordlists/breach.txt
var breachRaw string

var (
	baseline = parseLines(baselineRaw)
	breach   = parseLines(breachRaw)
)

// Options controls which sources Build folds into the corpus.
type Options struct {
	Year         string // Appended to list words and username variants when set
	IncludeExtra bool   // Union in the breach wordlist
	Leet         bool   // Expand every accumulated string with substitute.PasswordLeet
}

// Baseline returns a copy of the always-included password list.
func Baseline() []string {
	return slices.Clone(baseline)
}

// Extra returns a copy of the breach-derived password list.
func Extra() []string {
	return slices.Clone(breach)
}

// Build aggregates the corpus for the given usernames and returns it sorted.
// Every source is additive: enabling an option never removes a candidate.
func Build(usernames []string, opts Options) []string {
	return Accumulate(usernames, opts).Sorted()
}

// Accumulate is Build without the final sort, for callers that keep unioning.
func Accumulate(usernames []string, opts Options) *variant.Set {
	passwords := variant.New(baseline...)
	addYearForms(passwords, baseline, opts.Year)

	if opts.IncludeExtra {
		passwords.UnionSeq(slices.Values(breach))
		addYearForms(passwords, breach, opts.Year)
	}

	for _, username := range usernames {
		passwords.Union(names.PasswordVariantsFor(username, opts.Year))
	}

	if opts.Leet {
		leet := variant.New()
		for pwd := range passwords.All() {
			leet.UnionSeq(substitute.Expand(pwd, substitute.PasswordLeet))
		}
		passwords.Union(leet)
	}

	return passwords
}

func addYearForms(s *variant.Set, words []string, year string) {
	if year == "" {
		return
	}
	for _, w := range words {
		s.Add(w + year)
	}
}

func parseLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
