// Package substitute implements character-substitution ("leet") expansion.
//
// Given a string and a Table, Expand yields every string obtainable by
// independently replacing each character with itself or one of its table
// alternatives. The result is a cartesian product whose size is the product of
// the per-character choice counts, so it grows exponentially with input length.
// Expansion is exposed as an iter.Seq so callers can stream or cap it; callers
// that feed long inputs through dense tables are responsible for bounding them.
//
// Table lookup is case-insensitive on the key while the literal character keeps
// its original case as the identity choice: with {'a': {"4"}}, "Anna" expands
// over {A,4} x {n} x {n} x {a,4}. Bytes that are not valid UTF-8 pass through
// unchanged, so Latin-1 wordlists keep their original bytes.
package substitute

import (
	"iter"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/concave-dev/spraygen/internal/variant"
)

// Table maps a lowercase character to its ordered replacement strings. The
// character itself is always an implicit first alternative and need not be
// listed.
type Table map[rune][]string

// UsernameLeet is the single-alternative table used for username and email
// local-part variants.
var UsernameLeet = Table{
	'a': {"4"},
	'e': {"3"},
	'i': {"1"},
	'o': {"0"},
	's': {"5"},
	't': {"7"},
}

// PasswordLeet is the richer table used for password lists. Several letters
// carry more than one alternative.
var PasswordLeet = Table{
	'a': {"4", "@"},
	'e': {"3"},
	'i': {"1", "!"},
	'o': {"0"},
	's': {"5", "$"},
	't': {"7"},
}

// Alternatives returns the choices for c: c itself first, then the table
// entries for lower(c) in table order. Entries equal to c or repeated within
// the list are dropped so every choice is distinct.
func (t Table) Alternatives(c rune) []string {
	self := string(c)
	extra := t[unicode.ToLower(c)]
	alts := make([]string, 1, 1+len(extra))
	alts[0] = self
	for _, a := range extra {
		if !contains(alts, a) {
			alts = append(alts, a)
		}
	}
	return alts
}

// choicesFor is Alternatives for one character of input. A byte that is not
// valid UTF-8 has no alternatives and is kept as is.
func (t Table) choicesFor(ch string) []string {
	r, size := utf8.DecodeRuneInString(ch)
	if r == utf8.RuneError && size <= 1 {
		return []string{ch}
	}
	return t.Alternatives(r)
}

// characters splits s into one string per character. Invalid UTF-8 bytes
// become single-byte strings.
func characters(s string) []string {
	out := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Expand lazily enumerates every substitution of input under table. The first
// value is always input itself. Positions vary odometer-style with the last
// character changing fastest. An empty input yields exactly one empty string.
//
// The returned sequence is restartable: every range over it starts again from
// the first value.
func Expand(input string, table Table) iter.Seq[string] {
	chars := characters(input)
	choices := make([][]string, len(chars))
	for i, ch := range chars {
		choices[i] = table.choicesFor(ch)
	}

	return variant.Product(choices)
}

// ExpandSet materializes Expand into a set.
func ExpandSet(input string, table Table) *variant.Set {
	s := variant.New()
	s.UnionSeq(Expand(input, table))
	return s
}

// Count returns the number of strings Expand yields for input, saturating at
// math.MaxUint64.
func Count(input string, table Table) uint64 {
	var total uint64 = 1
	for _, ch := range characters(input) {
		n := uint64(len(table.choicesFor(ch)))
		if total > math.MaxUint64/n {
			return math.MaxUint64
		}
		total *= n
	}
	return total
}

// Apply performs a single substitution pass, replacing every matched character
// with its first table alternative. It is the one-to-one form of Expand.
func Apply(input string, table Table) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, ch := range characters(input) {
		if alts := table.choicesFor(ch); len(alts) > 1 {
			b.WriteString(alts[1])
			continue
		}
		b.WriteString(ch)
	}
	return b.String()
}
