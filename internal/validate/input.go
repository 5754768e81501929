package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxYearLength bounds the year suffix. Years are free-form so "2024", "24",
// "2k24" and "'24" are all accepted.
const MaxYearLength = 16

// Year validates an optional year suffix. Empty means "no year"; otherwise it
// must be at most MaxYearLength characters with no whitespace or control
// characters.
func Year(year string) error {
	if year == "" {
		return nil
	}
	if err := ValidateField(year, fmt.Sprintf("max=%d", MaxYearLength)); err != nil {
		return fmt.Errorf("year '%s' must be at most %d characters", year, MaxYearLength)
	}
	if strings.IndexFunc(year, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return fmt.Errorf("year %q must not contain whitespace or control characters", year)
	}
	return nil
}

// Domain validates an optional email domain. Empty means "no email
// generation"; otherwise it must be an RFC 1123 host name such as example.com.
func Domain(domain string) error {
	if domain == "" {
		return nil
	}
	if strings.Contains(domain, "@") {
		return fmt.Errorf("domain '%s' must not contain '@' (pass only the part after it)", domain)
	}
	if err := ValidateField(domain, "hostname_rfc1123"); err != nil {
		return fmt.Errorf("domain '%s' is not a valid host name", domain)
	}
	return nil
}

// Limit validates an output cap. Zero disables the cap.
func Limit(n int) error {
	if err := ValidateField(n, "min=0"); err != nil {
		return fmt.Errorf("limit must be zero (no cap) or positive, got %d", n)
	}
	return nil
}
