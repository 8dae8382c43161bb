package common

import (
	"fmt"
	"strings"
)

// CleanOrgNumber strips hyphens and spaces from an organisation number.
func CleanOrgNumber(orgNumber string) string {
	s := strings.ReplaceAll(orgNumber, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// FormatOrgNumber returns the canonical display form: a hyphen six digits in
// for the 10-digit form (556767-1267). Other lengths pass through cleaned.
func FormatOrgNumber(orgNumber string) string {
	clean := CleanOrgNumber(orgNumber)
	if len(clean) == 10 {
		return clean[:6] + "-" + clean[6:]
	}
	return clean
}

// ValidateOrgNumber validates a Swedish organisation number and returns its
// cleaned form. Valid numbers are 10 or 12 digits after stripping separators.
func ValidateOrgNumber(orgNumber string) (string, error) {
	clean := CleanOrgNumber(orgNumber)
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("organisation number may only contain digits: %q", orgNumber)
		}
	}
	if len(clean) != 10 && len(clean) != 12 {
		return "", fmt.Errorf("organisation number must be 10 or 12 digits, got %d", len(clean))
	}
	return clean, nil
}
