// Package seed reads the input records that drive variant generation.
//
// Two text formats are supported:
//
//   - Name lists: one person per line as whitespace-separated tokens. The first
//     and last tokens become the first and last name; middle tokens are
//     ignored. Lines with fewer than two tokens are counted as invalid and
//     skipped without aborting the batch.
//   - Token lists: one bare token per line (usernames or password seeds).
//
// Blank lines are skipped in both formats and never counted as invalid. Lines
// longer than 1 MiB are counted as invalid and skipped.
// Sources that cannot be opened are reported as ErrSourceUnavailable so the
// caller can continue with other independent work.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/concave-dev/spraygen/internal/names"
)

var (
	// ErrSourceUnavailable reports an input that is missing or unreadable.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidRecord reports a line that cannot form a seed record. It wraps
	// names.ErrInvalidInput so both match errors.Is(err, names.ErrInvalidInput).
	ErrInvalidRecord = fmt.Errorf("invalid record: %w", names.ErrInvalidInput)
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Record is one unit of input. A name record has First and Last set; a token
// record has Token set. Line is the 1-based source line.
type Record struct {
	Line  int
	First string
	Last  string
	Token string
}

// IsNamePair reports whether the record carries a first/last name pair.
func (r Record) IsNamePair() bool {
	return r.First != "" || r.Last != ""
}

// String renders the record for log messages.
func (r Record) String() string {
	if r.IsNamePair() {
		return r.First + " " + r.Last
	}
	return r.Token
}

// Report summarizes one pass over a source.
type Report struct {
	Source  string // Display name of the source
	Lines   int    // Lines read, blank lines included
	Valid   int    // Records produced
	Invalid int    // Lines rejected
}

// InvalidFunc receives every rejected line. The error wraps ErrInvalidRecord.
type InvalidFunc func(err error)

// ReadNames parses a name list. onInvalid may be nil.
func ReadNames(r io.Reader, onInvalid InvalidFunc) ([]Record, Report, error) {
	var records []Record
	report, err := scan(r, func(lineNo int, line string) error {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return fmt.Errorf("%w: line %d: %q needs first and last name", ErrInvalidRecord, lineNo, line)
		}
		records = append(records, Record{Line: lineNo, First: parts[0], Last: parts[len(parts)-1]})
		return nil
	}, onInvalid)
	return records, report, err
}

// ReadTokens parses a token list, one token per line.
func ReadTokens(r io.Reader) ([]Record, Report, error) {
	var records []Record
	report, err := scan(r, func(lineNo int, line string) error {
		records = append(records, Record{Line: lineNo, Token: line})
		return nil
	}, nil)
	return records, report, err
}

// Tokens returns the Token field of every record.
func Tokens(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Token)
	}
	return out
}

// scan feeds every non-blank trimmed line to parse and tallies the outcome.
// Lines longer than maxLineSize are rejected as invalid without being parsed.
func scan(r io.Reader, parse func(lineNo int, line string) error, onInvalid InvalidFunc) (Report, error) {
	var report Report

	reject := func(err error) {
		report.Invalid++
		if onInvalid != nil {
			onInvalid(err)
		}
	}

	reader := bufio.NewReaderSize(r, 64*1024)
	var line []byte
	skipping := false

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}

		if skipping {
			skipping = isPrefix
			continue
		}

		line = append(line, chunk...)
		if len(line) > maxLineSize {
			report.Lines++
			reject(fmt.Errorf("%w: line %d exceeds %d bytes", ErrInvalidRecord, report.Lines, maxLineSize))
			line = line[:0]
			skipping = isPrefix
			continue
		}
		if isPrefix {
			continue
		}

		report.Lines++
		text := strings.TrimSpace(strings.ReplaceAll(string(line), "\r", ""))
		line = line[:0]
		if text == "" {
			continue
		}

		if err := parse(report.Lines, text); err != nil {
			reject(err)
			continue
		}
		report.Valid++
	}

	return report, nil
}

// Open opens path for reading, mapping any failure to ErrSourceUnavailable.
// The path "-" selects standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path)
	}

	return f, nil
}

// LoadNames opens and parses a name list file.
func LoadNames(path string, onInvalid InvalidFunc) ([]Record, Report, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Report{Source: path}, err
	}
	defer rc.Close()

	records, report, err := ReadNames(rc, onInvalid)
	report.Source = path
	return records, report, err
}

// LoadTokens opens and parses a token list file.
func LoadTokens(path string) ([]Record, Report, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Report{Source: path}, err
	}
	defer rc.Close()

	records, report, err := ReadTokens(rc)
	report.Source = path
	return records, report, err
}
