// Package names generates candidate usernames, email addresses and
// token-derived passwords from seed data using fixed naming conventions.
//
// Every convention lives in an explicit catalog table so that adding or
// auditing a format is a one-line change and tests can assert catalog
// completeness by count:
//
//   - UsernameTemplates: 12 corporate username formats (jane.doe, jdoe, j.doe, ...)
//   - EmailTemplates:    10 local-part formats, each suffixed with @domain
//   - PasswordSuffixes:  suffixes appended to each case variant of a token
//   - YearSuffixes:      extra suffixes emitted when a year is supplied
//
// Names are lowercased before template application. Template output is
// deterministic; optional leet expansion only ever adds variants, never
// replaces the originals.
//
// Examples: "jane.doe", "jdoe99@example.com", "Jane@2024", "j4n3d03"
package names

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/concave-dev/spraygen/internal/substitute"
	"github.com/concave-dev/spraygen/internal/variant"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidInput reports seed data that cannot be rendered through the
// catalogs, such as an empty first or last name.
var ErrInvalidInput = errors.New("invalid input")

// Parts holds a normalized name pair along with the initials the templates
// need. Built by newParts only after both components passed validation.
type Parts struct {
	First        string
	Last         string
	FirstInitial string
	LastInitial  string
}

// Template renders one naming convention from a name pair.
type Template struct {
	Name   string
	Render func(p Parts) string
}

// UsernameTemplates is the corporate username catalog, in the order the
// formats are most commonly seen.
var UsernameTemplates = []Template{
	// Common corporate formats
	{"first.last", func(p Parts) string { return p.First + "." + p.Last }},
	{"flast", func(p Parts) string { return p.FirstInitial + p.Last }},
	{"f.last", func(p Parts) string { return p.FirstInitial + "." + p.Last }},
	{"firstl", func(p Parts) string { return p.First + p.LastInitial }},
	{"first_last", func(p Parts) string { return p.First + "_" + p.Last }},
	{"firstlast", func(p Parts) string { return p.First + p.Last }},
	{"lastf", func(p Parts) string { return p.Last + p.FirstInitial }},
	{"first", func(p Parts) string { return p.First }},
	{"last", func(p Parts) string { return p.Last }},

	// Numeric variants
	{"flast1", func(p Parts) string { return p.FirstInitial + p.Last + "1" }},
	{"first.last99", func(p Parts) string { return p.First + "." + p.Last + "99" }},
	{"firstlast123", func(p Parts) string { return p.First + p.Last + "123" }},
}

// EmailTemplates is the catalog of email local parts. The domain is attached
// by EmailsFor.
var EmailTemplates = []Template{
	// Most common corporate patterns
	{"first.last", func(p Parts) string { return p.First + "." + p.Last }},
	{"flast", func(p Parts) string { return p.FirstInitial + p.Last }},
	{"f.last", func(p Parts) string { return p.FirstInitial + "." + p.Last }},
	{"firstl", func(p Parts) string { return p.First + p.LastInitial }},
	{"firstlast", func(p Parts) string { return p.First + p.Last }},
	{"lastf", func(p Parts) string { return p.Last + p.FirstInitial }},

	// Secondary formats
	{"first", func(p Parts) string { return p.First }},
	{"last", func(p Parts) string { return p.Last }},

	// Numeric fallbacks
	{"first.last1", func(p Parts) string { return p.First + "." + p.Last + "1" }},
	{"flast99", func(p Parts) string { return p.FirstInitial + p.Last + "99" }},
}

// PasswordSuffixes are appended to every case variant of a token. The empty
// suffix keeps the bare variant itself in the output.
var PasswordSuffixes = []string{"", "1", "123", "!", "@123"}

// YearSuffixes are the separators placed between a case variant and the year
// when a year is supplied: Jane2024, Jane!2024, Jane@2024.
var YearSuffixes = []string{"", "!", "@"}

// newParts lowercases and trims a name pair and derives its initials.
func newParts(first, last string) (Parts, error) {
	lower := cases.Lower(language.Und)
	first = lower.String(strings.TrimSpace(first))
	last = lower.String(strings.TrimSpace(last))

	if first == "" {
		return Parts{}, fmt.Errorf("%w: first name cannot be empty", ErrInvalidInput)
	}
	if last == "" {
		return Parts{}, fmt.Errorf("%w: last name cannot be empty", ErrInvalidInput)
	}

	return Parts{
		First:        first,
		Last:         last,
		FirstInitial: firstRune(first),
		LastInitial:  firstRune(last),
	}, nil
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// UsernamesFor renders every username template for the given name pair. When
// leet is set, the full substitute.UsernameLeet expansion of every member is
// unioned in alongside the originals.
func UsernamesFor(first, last string, leet bool) (*variant.Set, error) {
	parts, err := newParts(first, last)
	if err != nil {
		return nil, err
	}

	usernames := variant.New()
	for _, tmpl := range UsernameTemplates {
		usernames.Add(tmpl.Render(parts))
	}

	if leet {
		leetNames := variant.New()
		for u := range usernames.All() {
			leetNames.UnionSeq(substitute.Expand(u, substitute.UsernameLeet))
		}
		usernames.Union(leetNames)
	}

	return usernames, nil
}

// EmailsFor renders every email template for the name pair at domain. Leet
// expansion touches only the local part; the domain is re-attached unchanged.
func EmailsFor(first, last, domain string, leet bool) (*variant.Set, error) {
	parts, err := newParts(first, last)
	if err != nil {
		return nil, err
	}

	domain = cases.Lower(language.Und).String(strings.TrimSpace(domain))
	if domain == "" {
		return nil, fmt.Errorf("%w: email domain cannot be empty", ErrInvalidInput)
	}

	emails := variant.New()
	for _, tmpl := range EmailTemplates {
		emails.Add(tmpl.Render(parts) + "@" + domain)
	}

	if leet {
		leetEmails := variant.New()
		for email := range emails.All() {
			local, domainPart, _ := strings.Cut(email, "@")
			for l := range substitute.Expand(local, substitute.UsernameLeet) {
				leetEmails.Add(l + "@" + domainPart)
			}
		}
		emails.Union(leetEmails)
	}

	return emails, nil
}

// CaseVariants returns the lower, upper and capitalized forms of token. The
// capitalized form upper-cases the first character and lower-cases the rest.
func CaseVariants(token string) []string {
	lower := cases.Lower(language.Und).String(token)
	upper := cases.Upper(language.Und).String(token)

	capitalized := lower
	if lower != "" {
		head := firstRune(lower)
		capitalized = cases.Upper(language.Und).String(head) + lower[len(head):]
	}

	return []string{lower, upper, capitalized}
}

// PasswordVariantsFor derives password candidates from a single token: each
// case variant with every PasswordSuffixes entry and, when year is non-empty,
// every YearSuffixes entry. A blank token yields an empty set.
func PasswordVariantsFor(token, year string) *variant.Set {
	variations := variant.New()

	token = strings.TrimSpace(token)
	if token == "" {
		return variations
	}

	for _, base := range CaseVariants(token) {
		for _, suffix := range PasswordSuffixes {
			variations.Add(base + suffix)
		}
		if year != "" {
			for _, sep := range YearSuffixes {
				variations.Add(base + sep + year)
			}
		}
	}

	return variations
}
