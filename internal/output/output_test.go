package output

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSorted(t *testing.T) {
	a := slices.Values([]string{"Admin", "Summer", "jdoe"})
	b := slices.Values([]string{"Aaaa", "Summer", "Summer", "zeta"})
	c := slices.Values([]string{})

	got := slices.Collect(MergeSorted(a, b, c))
	assert.Equal(t, []string{"Aaaa", "Admin", "Summer", "jdoe", "zeta"}, got)
}

func TestMergeSortedEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(MergeSorted()))
	assert.Equal(t, []string{""}, slices.Collect(MergeSorted(slices.Values([]string{"", ""}))))
}

func TestMergeSortedEarlyStop(t *testing.T) {
	a := slices.Values([]string{"a", "c", "e"})
	b := slices.Values([]string{"b", "d", "f"})

	var got []string
	for v := range MergeSorted(a, b) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSinkWriteAll(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink("buffer", &buf)

	n, err := sink.WriteAll(slices.Values([]string{"doe", "jane.doe"}))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.Equal(t, 2, n)
	assert.Equal(t, "doe\njane.doe\n", buf.String())
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.lst")
	sink, err := Create(path)
	require.NoError(t, err)
	assert.Equal(t, path, sink.Name)

	_, err = sink.WriteAll(slices.Values([]string{"a", "b"}))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestCreateStdout(t *testing.T) {
	for _, p := range []string{"", "-"} {
		sink, err := Create(p)
		require.NoError(t, err)
		assert.Equal(t, "stdout", sink.Name)
		require.NoError(t, sink.Close())
	}
}

func TestCreateFailure(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.lst"))
	assert.Error(t, err)
}
