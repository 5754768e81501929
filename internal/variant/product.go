package variant

import (
	"iter"
	"strings"
)

// Product lazily yields the cartesian product of choices, concatenating one
// entry from each position. The last position varies fastest and the first
// value joins the first entry of every position. A position with no entries
// makes the product empty; no positions at all yields one empty string.
//
// The returned sequence is restartable.
func Product(choices [][]string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range choices {
			if len(c) == 0 {
				return
			}
		}

		indices := make([]int, len(choices))
		var b strings.Builder
		for {
			b.Reset()
			for pos, idx := range indices {
				b.WriteString(choices[pos][idx])
			}
			if !yield(b.String()) {
				return
			}

			// Advance the odometer: roll over exhausted trailing positions.
			i := len(indices) - 1
			for i >= 0 && indices[i] == len(choices[i])-1 {
				i--
			}
			if i < 0 {
				return
			}
			indices[i]++
			for j := i + 1; j < len(indices); j++ {
				indices[j] = 0
			}
		}
	}
}
