package corpus

import (
	"slices"
	"testing"

	"github.com/concave-dev/spraygen/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLists(t *testing.T) {
	assert.Equal(t, []string{
		"Summer", "Winter", "Spring", "Autumn", "Fall",
		"Password", "Welcome", "Admin", "Qwerty", "Letmein",
	}, Baseline())

	extra := Extra()
	assert.Len(t, extra, 95)
	assert.Contains(t, extra, "trustno1")
	assert.NotContains(t, extra, "# Most common passwords observed in public breach corpora.")

	// returned slices are copies
	extra[0] = "mutated"
	assert.NotEqual(t, "mutated", Extra()[0])
}

func TestBuildBaselineOnly(t *testing.T) {
	got := Build(nil, Options{})
	assert.Equal(t, []string{
		"Admin", "Autumn", "Fall", "Letmein", "Password",
		"Qwerty", "Spring", "Summer", "Welcome", "Winter",
	}, got)
}

func TestBuildWithYear(t *testing.T) {
	got := Build(nil, Options{Year: "2024"})
	assert.Len(t, got, 20)
	assert.Contains(t, got, "Summer2024")
	assert.Contains(t, got, "Summer")
}

func TestBuildWithUsernames(t *testing.T) {
	got := Build([]string{"jdoe", "  ", "asmith"}, Options{Year: "2022"})
	for _, v := range []string{"jdoe", "JDOE@123", "Jdoe!2022", "asmith@2022", "Winter2022"} {
		assert.Contains(t, got, v)
	}
}

func TestBuildSortedAndUnique(t *testing.T) {
	got := Build([]string{"admin", "Admin"}, Options{Year: "2023", IncludeExtra: true, Leet: true})
	require.NotEmpty(t, got)
	assert.True(t, slices.IsSorted(got))
	assert.Equal(t, len(got), len(slices.Compact(slices.Clone(got))))
}

func TestBuildMonotonic(t *testing.T) {
	users := []string{"jdoe", "svc_backup"}
	base := variant.New(Build(users, Options{Year: "2024"})...)

	variants := []Options{
		{Year: "2024", IncludeExtra: true},
		{Year: "2024", Leet: true},
		{Year: "2024", IncludeExtra: true, Leet: true},
	}
	for _, opts := range variants {
		enabled := variant.New(Build(users, opts)...)
		assert.True(t, enabled.IsSuperset(base), "%+v must be a superset of the plain run", opts)
	}
}

func TestBuildLeet(t *testing.T) {
	got := Build(nil, Options{Leet: true})
	for _, v := range []string{"P@55w0rd", "P4$$w0rd", "4dm!n", "@dm1n", "Summer"} {
		assert.Contains(t, got, v)
	}
}
