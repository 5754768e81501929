// Package variant provides the accumulation set shared by every spraygen
// generator.
//
// A Set only grows: strings enter through Add, Union or UnionSeq and are never
// removed. Insertion order carries no meaning; Sorted returns the output order
// used when a wordlist is written. Keeping mutation behind this small surface
// makes "enabling an option never drops a candidate" a structural property
// rather than something every call site has to get right.
package variant

import (
	"iter"
	"maps"
	"slices"
)

// Set is a grow-only collection of unique candidate strings.
// The zero value is ready to use.
type Set struct {
	items map[string]struct{}
}

// New returns a set seeded with the given values.
func New(values ...string) *Set {
	s := &Set{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	if _, ok := s.items[v]; ok {
		return false
	}
	s.items[v] = struct{}{}
	return true
}

// Union adds every member of other to s. A nil other is a no-op.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	for v := range other.items {
		s.Add(v)
	}
}

// UnionSeq drains seq into s and returns how many new values were added.
func (s *Set) UnionSeq(seq iter.Seq[string]) int {
	added := 0
	for v := range seq {
		if s.Add(v) {
			added++
		}
	}
	return added
}

// Contains reports whether v is a member.
func (s *Set) Contains(v string) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[v]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All iterates over the members in no particular order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Sorted returns the members in ascending byte order.
func (s *Set) Sorted() []string {
	if s == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s.items))
}

// IsSuperset reports whether every member of other is also in s.
func (s *Set) IsSuperset(other *Set) bool {
	for v := range other.All() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}
