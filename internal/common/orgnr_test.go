package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanOrgNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hyphenated", "556767-1267", "5567671267"},
		{"spaces", "556767 1267", "5567671267"},
		{"already clean", "5567671267", "5567671267"},
		{"mixed separators", " 556767-1267 ", "5567671267"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanOrgNumber(tt.input))
		})
	}
}

func TestFormatOrgNumber(t *testing.T) {
	assert.Equal(t, "556767-1267", FormatOrgNumber("5567671267"))
	assert.Equal(t, "556767-1267", FormatOrgNumber("556767-1267"))
	// 12-digit form is not hyphenated
	assert.Equal(t, "165567671267", FormatOrgNumber("165567671267"))
}

func TestFormatOrgNumberIdempotent(t *testing.T) {
	inputs := []string{"5567671267", "556767-1267", "165567671267"}
	for _, in := range inputs {
		once := FormatOrgNumber(in)
		twice := FormatOrgNumber(once)
		assert.Equal(t, once, twice, "canonicalization must be idempotent for %q", in)
	}
}

func TestValidateOrgNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid 10 digits", "5567671267", "5567671267", false},
		{"valid hyphenated", "556767-1267", "5567671267", false},
		{"valid 12 digits", "165567671267", "165567671267", false},
		{"too short", "123456789", "", true},
		{"eleven digits", "12345678901", "", true},
		{"letters", "55676712ab", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOrgNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
