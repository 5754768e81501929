// Package output writes generated wordlists.
//
// Wordlists are newline-delimited, sorted and free of duplicates. Sorted
// inputs are combined with MergeSorted, which streams the union of several
// ascending sequences without materializing them, so a mask expansion can be
// merged with an in-memory corpus and written in constant extra memory.
package output

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
)

// Sink is an open output destination.
type Sink struct {
	Name string // Display name: the file path or "stdout"

	w      *bufio.Writer
	closer io.Closer
}

// Create opens path for writing, truncating any existing file. An empty path
// or "-" writes to standard output.
func Create(path string) (*Sink, error) {
	if path == "" || path == "-" {
		return NewSink("stdout", os.Stdout), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	s := NewSink(path, f)
	s.closer = f
	return s, nil
}

// NewSink wraps w. Close flushes but does not close w.
func NewSink(name string, w io.Writer) *Sink {
	return &Sink{Name: name, w: bufio.NewWriterSize(w, 64*1024)}
}

// WriteAll writes every value of seq on its own line and returns the count.
func (s *Sink) WriteAll(seq iter.Seq[string]) (int, error) {
	n := 0
	for v := range seq {
		if _, err := s.w.WriteString(v); err != nil {
			return n, fmt.Errorf("failed to write to %s: %w", s.Name, err)
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("failed to write to %s: %w", s.Name, err)
		}
		n++
	}
	return n, nil
}

// Close flushes buffered output and closes the underlying file, if any.
func (s *Sink) Close() error {
	flushErr := s.w.Flush()
	if s.closer != nil {
		if err := s.closer.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("failed to close %s: %w", s.Name, err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush %s: %w", s.Name, flushErr)
	}
	return nil
}

// MergeSorted yields the ascending, duplicate-free union of seqs. Every input
// must itself be in ascending order; duplicates within or across inputs are
// collapsed.
func MergeSorted(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		type head struct {
			next func() (string, bool)
			stop func()
			val  string
		}

		heads := make([]*head, 0, len(seqs))
		defer func() {
			for _, h := range heads {
				h.stop()
			}
		}()

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			h := &head{next: next, stop: stop}
			heads = append(heads, h)
		}

		live := make([]*head, 0, len(heads))
		for _, h := range heads {
			if v, ok := h.next(); ok {
				h.val = v
				live = append(live, h)
			}
		}

		var last string
		emitted := false
		for len(live) > 0 {
			minIdx := 0
			for i := 1; i < len(live); i++ {
				if live[i].val < live[minIdx].val {
					minIdx = i
				}
			}

			h := live[minIdx]
			v := h.val
			if !emitted || v != last {
				if !yield(v) {
					return
				}
				last = v
				emitted = true
			}

			if nv, ok := h.next(); ok {
				h.val = nv
			} else {
				live = slices.Delete(live, minIdx, minIdx+1)
			}
		}
	}
}
