// Package mask implements hashcat-style mask parsing and exhaustive expansion.
//
// A mask mixes literal characters with positional class placeholders:
//
//	?u  upper-case letters A-Z
//	?l  lower-case letters a-z
//	?d  digits 0-9
//	?s  special characters !@#$%^&*
//
// Parse scans left to right with a two-character lookahead, consuming a
// recognized placeholder as one token and anything else as a single literal.
// By default parsing is lenient: a trailing "?" or a "?" followed by an
// unknown letter is read as literal characters, so existing masks never fail.
// The Strict option rejects those forms instead and treats "??" as an escaped
// literal "?".
//
// Expansion is a lazy, restartable iter.Seq over the cartesian product of the
// token classes; an all-class mask such as ?u?l?l?l?l yields roughly 11.8M
// strings, so consumers stream the sequence and may cap it with Limit.
// Class members are stored in ascending byte order, which makes every
// expansion strictly ascending and free of duplicates.
package mask

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/concave-dev/spraygen/internal/variant"
)

// ErrInvalidMask reports a malformed placeholder under strict parsing.
var ErrInvalidMask = errors.New("invalid mask")

// Class is a named positional character class.
type Class struct {
	Name    byte   // Placeholder letter following '?'
	Members string // Class characters in ascending byte order
}

// Built-in classes keyed by placeholder letter.
var (
	Upper   = Class{Name: 'u', Members: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"}
	Lower   = Class{Name: 'l', Members: "abcdefghijklmnopqrstuvwxyz"}
	Digit   = Class{Name: 'd', Members: "0123456789"}
	Special = Class{Name: 's', Members: "!#$%&*@^"} // the set !@#$%^&* sorted
)

var classes = map[byte]Class{
	'u': Upper,
	'l': Lower,
	'd': Digit,
	's': Special,
}

// Token is one mask position: either a class reference or a literal
// character. Literal holds the character's bytes, or a single raw byte when
// the mask is not valid UTF-8.
type Token struct {
	Class   *Class
	Literal string
}

// IsLiteral reports whether the token is a single fixed character.
func (t Token) IsLiteral() bool {
	return t.Class == nil
}

// choices returns the strings the token contributes at its position.
func (t Token) choices() []string {
	if t.IsLiteral() {
		return []string{t.Literal}
	}
	out := make([]string, len(t.Class.Members))
	for i := range t.Class.Members {
		out[i] = t.Class.Members[i : i+1]
	}
	return out
}

// Pattern is a parsed, immutable mask.
type Pattern struct {
	tokens []Token
}

type parseOptions struct {
	strict bool
}

// Option configures Parse.
type Option func(*parseOptions)

// Strict makes Parse fail with ErrInvalidMask on unknown placeholders and a
// trailing '?', and accept "??" as an escaped literal '?'.
func Strict() Option {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// Parse converts a mask string into a Pattern. In the default lenient mode it
// never returns an error.
func Parse(s string, opts ...Option) (*Pattern, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	tokens := make([]Token, 0, len(s))

	for i := 0; i < len(s); {
		if s[i] != '?' {
			_, size := utf8.DecodeRuneInString(s[i:])
			tokens = append(tokens, Token{Literal: s[i : i+size]})
			i += size
			continue
		}

		if i+1 < len(s) {
			next := s[i+1]
			if class, ok := classes[next]; ok {
				tokens = append(tokens, Token{Class: &class})
				i += 2
				continue
			}
			if o.strict {
				if next == '?' {
					tokens = append(tokens, Token{Literal: "?"})
					i += 2
					continue
				}
				r, _ := utf8.DecodeRuneInString(s[i+1:])
				return nil, fmt.Errorf("%w: unknown placeholder ?%q at byte %d", ErrInvalidMask, r, i)
			}
		} else if o.strict {
			return nil, fmt.Errorf("%w: dangling ? at end of mask", ErrInvalidMask)
		}

		tokens = append(tokens, Token{Literal: "?"})
		i++
	}

	return &Pattern{tokens: tokens}, nil
}

// Len returns the number of characters in every generated string.
func (p *Pattern) Len() int {
	return len(p.tokens)
}

// Count returns the number of strings Expand yields, saturating at
// math.MaxUint64.
func (p *Pattern) Count() uint64 {
	var total uint64 = 1
	for _, t := range p.tokens {
		n := uint64(1)
		if !t.IsLiteral() {
			n = uint64(len(t.Class.Members))
		}
		if total > math.MaxUint64/n {
			return math.MaxUint64
		}
		total *= n
	}
	return total
}

// String renders the canonical mask. Literal '?' is written as "??", which
// re-parses to the same pattern under Strict.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, t := range p.tokens {
		switch {
		case !t.IsLiteral():
			b.WriteByte('?')
			b.WriteByte(t.Class.Name)
		case t.Literal == "?":
			b.WriteString("??")
		default:
			b.WriteString(t.Literal)
		}
	}
	return b.String()
}

// Expand lazily enumerates every string matching the pattern in ascending
// order. Each range over the returned sequence starts from the beginning.
// An empty pattern yields a single empty string.
func (p *Pattern) Expand() iter.Seq[string] {
	choices := make([][]string, len(p.tokens))
	for i, t := range p.tokens {
		choices[i] = t.choices()
	}

	return variant.Product(choices)
}

// Limit caps seq at n values. A non-positive n means no cap.
func Limit(seq iter.Seq[string], n int) iter.Seq[string] {
	if n <= 0 {
		return seq
	}
	return func(yield func(string) bool) {
		emitted := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			emitted++
			if emitted >= n {
				return
			}
		}
	}
}
