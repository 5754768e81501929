package substitute

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSingleAlternative(t *testing.T) {
	got := ExpandSet("doe", Table{'o': {"0"}})
	assert.Equal(t, []string{"d0e", "doe"}, got.Sorted())
}

func TestExpandEmptyInput(t *testing.T) {
	got := slices.Collect(Expand("", PasswordLeet))
	assert.Equal(t, []string{""}, got)
	assert.Equal(t, uint64(1), Count("", PasswordLeet))
}

func TestExpandIdentityFirst(t *testing.T) {
	for _, input := range []string{"jane.doe", "Password", "Summer2024!", "xyz"} {
		t.Run(input, func(t *testing.T) {
			var first string
			for v := range Expand(input, PasswordLeet) {
				first = v
				break
			}
			assert.Equal(t, input, first)
			assert.True(t, ExpandSet(input, PasswordLeet).Contains(input))
		})
	}
}

func TestExpandCardinality(t *testing.T) {
	tests := []struct {
		input string
		table Table
		want  uint64
	}{
		{"doe", UsernameLeet, 4},                  // o, e
		{"jane.doe", UsernameLeet, 16},            // a, e, o, e
		{"password", PasswordLeet, 3 * 3 * 3 * 2}, // a, s, s, o
		{"Admin", PasswordLeet, 3 * 3},            // A, i
		{"xyz", PasswordLeet, 1},
		{"", UsernameLeet, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.input, tt.table))

			all := slices.Collect(Expand(tt.input, tt.table))
			assert.Len(t, all, int(tt.want))
			assert.Equal(t, int(tt.want), ExpandSet(tt.input, tt.table).Len(), "values must be distinct")
		})
	}
}

func TestExpandCaseInsensitiveLookup(t *testing.T) {
	got := ExpandSet("Ab", Table{'a': {"4"}})
	assert.Equal(t, []string{"4b", "Ab"}, got.Sorted())
}

func TestAlternativesDeduplicates(t *testing.T) {
	table := Table{'o': {"0", "o", "0", "()"}}
	assert.Equal(t, []string{"o", "0", "()"}, table.Alternatives('o'))
	assert.Equal(t, []string{"O", "0", "o", "()"}, table.Alternatives('O'))
	assert.Equal(t, []string{"x"}, table.Alternatives('x'))
}

func TestExpandRestartable(t *testing.T) {
	seq := Expand("sat", PasswordLeet)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestExpandEarlyStop(t *testing.T) {
	n := 0
	for range Expand("aaaaaaaaaaaa", PasswordLeet) {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestCountSaturates(t *testing.T) {
	long := make([]rune, 80)
	for i := range long {
		long[i] = 'a'
	}
	assert.Equal(t, ^uint64(0), Count(string(long), PasswordLeet))
}

func TestApply(t *testing.T) {
	assert.Equal(t, "j4n3.d03", Apply("jane.doe", UsernameLeet))
	assert.Equal(t, "P455w0rd", Apply("Password", PasswordLeet))
	assert.Equal(t, "xyz", Apply("xyz", UsernameLeet))
}

func TestExpandKeepsInvalidUTF8(t *testing.T) {
	input := "caf\xe9"

	got := slices.Collect(Expand(input, UsernameLeet))
	require.NotEmpty(t, got)
	assert.Equal(t, input, got[0])
	assert.Equal(t, []string{"caf\xe9", "c4f\xe9"}, got)

	assert.True(t, ExpandSet(input, UsernameLeet).Contains(input))
	assert.Equal(t, uint64(2), Count(input, UsernameLeet))
	assert.Equal(t, "c4f\xe9", Apply(input, UsernameLeet))
}
