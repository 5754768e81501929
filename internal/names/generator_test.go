package names

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalogCompleteness pins the size of every convention catalog
func TestCatalogCompleteness(t *testing.T) {
	assert.Len(t, UsernameTemplates, 12)
	assert.Len(t, EmailTemplates, 10)
	assert.Len(t, PasswordSuffixes, 5)
	assert.Len(t, YearSuffixes, 3)

	seen := make(map[string]bool)
	for _, tmpl := range UsernameTemplates {
		assert.False(t, seen[tmpl.Name], "duplicate username template %q", tmpl.Name)
		seen[tmpl.Name] = true
	}
}

// TestUsernamesFor tests the username catalog against a known name pair
func TestUsernamesFor(t *testing.T) {
	got, err := UsernamesFor("Jane", "Doe", false)
	require.NoError(t, err)

	want := []string{
		"doe", "doej", "j.doe", "jane", "jane.doe", "jane.doe99",
		"jane_doe", "janed", "janedoe", "janedoe123", "jdoe", "jdoe1",
	}
	assert.Equal(t, want, got.Sorted())
}

// TestUsernamesForLeet tests that leet output extends but never replaces originals
func TestUsernamesForLeet(t *testing.T) {
	plain, err := UsernamesFor("Jane", "Doe", false)
	require.NoError(t, err)
	leet, err := UsernamesFor("Jane", "Doe", true)
	require.NoError(t, err)

	assert.True(t, leet.IsSuperset(plain))
	assert.Greater(t, leet.Len(), plain.Len())
	for _, v := range []string{"j4n3.d03", "j4ne.doe", "jd03", "d03j"} {
		assert.True(t, leet.Contains(v), "expected %q in leet output", v)
	}
}

// TestUsernamesForEmptyName tests validation of empty name components
func TestUsernamesForEmptyName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"empty first", "", "Doe"},
		{"empty last", "Jane", ""},
		{"whitespace first", "   ", "Doe"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UsernamesFor(tt.first, tt.last, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			_, err = EmailsFor(tt.first, tt.last, "example.com", true)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// TestUsernamesForMultibyteInitial tests initials taken by character, not byte
func TestUsernamesForMultibyteInitial(t *testing.T) {
	got, err := UsernamesFor("Élodie", "Ørsted", false)
	require.NoError(t, err)
	assert.True(t, got.Contains("éørsted"))
	assert.True(t, got.Contains("élodieø"))
}

// TestEmailsFor tests the email catalog and domain handling
func TestEmailsFor(t *testing.T) {
	got, err := EmailsFor("Jane", "Doe", "Example.com", false)
	require.NoError(t, err)

	assert.Equal(t, 10, got.Len())
	assert.True(t, got.Contains("jane.doe@example.com"))
	assert.True(t, got.Contains("jdoe99@example.com"))
	for v := range got.All() {
		assert.True(t, strings.HasSuffix(v, "@example.com"), v)
	}

	_, err = EmailsFor("Jane", "Doe", " ", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestEmailsForLeetKeepsDomain tests that substitution never reaches the domain
func TestEmailsForLeetKeepsDomain(t *testing.T) {
	plain, err := EmailsFor("Jane", "Doe", "example.com", false)
	require.NoError(t, err)
	leet, err := EmailsFor("Jane", "Doe", "example.com", true)
	require.NoError(t, err)

	assert.True(t, leet.IsSuperset(plain))
	assert.True(t, leet.Contains("j4n3.d03@example.com"))
	for v := range leet.All() {
		local, domain, found := strings.Cut(v, "@")
		require.True(t, found, v)
		assert.Equal(t, "example.com", domain, v)
		assert.NotContains(t, local, "@")
	}
}

// TestPasswordVariantsFor tests case transforms and suffixes
func TestPasswordVariantsFor(t *testing.T) {
	got := PasswordVariantsFor("jDoe", "")
	assert.Equal(t, 15, got.Len())
	for _, v := range []string{"jdoe", "JDOE", "Jdoe", "jdoe1", "JDOE123", "Jdoe!", "jdoe@123"} {
		assert.True(t, got.Contains(v), "expected %q", v)
	}
	assert.False(t, got.Contains("jDoe"), "original mixed case is not one of the case variants")

	withYear := PasswordVariantsFor("jdoe", "2024")
	assert.Equal(t, 24, withYear.Len())
	for _, v := range []string{"jdoe2024", "Jdoe!2024", "JDOE@2024"} {
		assert.True(t, withYear.Contains(v), "expected %q", v)
	}
	assert.True(t, withYear.IsSuperset(PasswordVariantsFor("jdoe", "")))
}

// TestPasswordVariantsForCollapsingCases tests tokens whose case forms coincide
func TestPasswordVariantsForCollapsingCases(t *testing.T) {
	got := PasswordVariantsFor("1234", "")
	assert.Equal(t, 5, got.Len())

	assert.Equal(t, 0, PasswordVariantsFor("  ", "2024").Len())
}

// TestDeterminism tests that repeated runs produce identical output
func TestDeterminism(t *testing.T) {
	for i := 0; i < 3; i++ {
		a, err := UsernamesFor("Jane", "Doe", true)
		require.NoError(t, err)
		b, err := UsernamesFor("Jane", "Doe", true)
		require.NoError(t, err)
		assert.Equal(t, a.Sorted(), b.Sorted())
	}
	assert.Equal(t, PasswordVariantsFor("admin", "2022").Sorted(), PasswordVariantsFor("admin", "2022").Sorted())
}

// TestCaseVariants tests the capitalization rules
func TestCaseVariants(t *testing.T) {
	assert.Equal(t, []string{"jane.doe", "JANE.DOE", "Jane.doe"}, CaseVariants("jAnE.DoE"))
	assert.Equal(t, []string{"", "", ""}, CaseVariants(""))
}
