package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/concave-dev/spraygen/internal/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNames(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe",
		"",
		"Madonna",
		"John Ronald Reuel Tolkien\r",
		"   ",
		"  Ada   Lovelace  ",
	}, "\n")

	var rejected []error
	records, report, err := ReadNames(strings.NewReader(input), func(err error) {
		rejected = append(rejected, err)
	})
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Line: 1, First: "Jane", Last: "Doe"},
		{Line: 4, First: "John", Last: "Tolkien"},
		{Line: 6, First: "Ada", Last: "Lovelace"},
	}, records)
	assert.Equal(t, Report{Lines: 6, Valid: 3, Invalid: 1}, report)

	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], ErrInvalidRecord)
	assert.ErrorIs(t, rejected[0], names.ErrInvalidInput)
	assert.Contains(t, rejected[0].Error(), "line 3")
}

func TestReadNamesNilCallback(t *testing.T) {
	records, report, err := ReadNames(strings.NewReader("one\ntwo\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 2, report.Invalid)
}

func TestReadTokens(t *testing.T) {
	records, report, err := ReadTokens(strings.NewReader("jdoe\n\n  asmith \nsvc_backup\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"jdoe", "asmith", "svc_backup"}, Tokens(records))
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 0, report.Invalid)
}

func TestRecordString(t *testing.T) {
	assert.Equal(t, "Jane Doe", Record{First: "Jane", Last: "Doe"}.String())
	assert.Equal(t, "jdoe", Record{Token: "jdoe"}.String())
	assert.True(t, Record{First: "Jane", Last: "Doe"}.IsNamePair())
	assert.False(t, Record{Token: "jdoe"}.IsNamePair())
}

func TestLoadMissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, report, err := LoadNames(missing, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.Equal(t, missing, report.Source)

	_, _, err = LoadTokens(t.TempDir())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLoadNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nAlan Turing\n"), 0o600))

	records, report, err := LoadNames(path, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, path, report.Source)
	assert.Equal(t, 2, report.Valid)
}

func TestReadNamesSkipsOverlongLine(t *testing.T) {
	input := "Jane Doe\n" + strings.Repeat("a", maxLineSize+10) + "\nAda Lovelace"

	var rejected []error
	records, report, err := ReadNames(strings.NewReader(input), func(err error) {
		rejected = append(rejected, err)
	})
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Line: 1, First: "Jane", Last: "Doe"},
		{Line: 3, First: "Ada", Last: "Lovelace"},
	}, records)
	assert.Equal(t, Report{Lines: 3, Valid: 2, Invalid: 1}, report)

	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], ErrInvalidRecord)
	assert.Contains(t, rejected[0].Error(), "line 2")
}

func TestReadTokensLongLineWithinLimit(t *testing.T) {
	long := strings.Repeat("b", 200*1024)
	records, report, err := ReadTokens(strings.NewReader(long + "\r\njdoe\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{long, "jdoe"}, Tokens(records))
	assert.Equal(t, 0, report.Invalid)
}
