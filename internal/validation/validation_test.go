package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// TestParseHeight tests the accepted height forms
func TestParseHeight(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`5'8"`, 68},
		{"5'8", 68},
		{"5 8", 68},
		{"68", 68},
		{`68"`, 68},
		{"6'", 72},
		{"4'11", 59},
	}
	for _, tt := range tests {
		got, err := ParseHeight(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

// TestParseHeight_Invalid tests out-of-range and junk input
func TestParseHeight_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "tall", "2'5", "120", "20"} {
		_, err := ParseHeight(input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", input)
	}
}

// TestParseWeight tests unit suffix stripping and bounds
func TestParseWeight(t *testing.T) {
	got, err := ParseWeight("150")
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	got, err = ParseWeight("180 lbs")
	require.NoError(t, err)
	assert.Equal(t, 180, got)

	got, err = ParseWeight("200 pounds")
	require.NoError(t, err)
	assert.Equal(t, 200, got)

	_, err = ParseWeight("30")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseWeight("heavy")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestParseHeightRange tests range and single-value forms
func TestParseHeightRange(t *testing.T) {
	r, err := ParseHeightRange("66-70")
	require.NoError(t, err)
	assert.Equal(t, domain.NewRange(66, 70), r)

	r, err = ParseHeightRange(`5'6" - 5'10"`)
	require.NoError(t, err)
	assert.Equal(t, domain.NewRange(66, 70), r)

	r, err = ParseHeightRange("68")
	require.NoError(t, err)
	assert.Equal(t, domain.Exact(68), r)

	r, err = ParseHeightRange("")
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

// TestParseWeightRange tests the word separators
func TestParseWeightRange(t *testing.T) {
	r, err := ParseWeightRange("150 to 180")
	require.NoError(t, err)
	assert.Equal(t, domain.NewRange(150, 180), r)

	_, err = ParseWeightRange("180-150")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestParseAgeRange tests age bounds
func TestParseAgeRange(t *testing.T) {
	r, err := ParseAgeRange("25-35")
	require.NoError(t, err)
	assert.Equal(t, domain.NewRange(25, 35), r)

	_, err = ParseAgeRange("90-130")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestNormalizeState tests codes and full names
func TestNormalizeState(t *testing.T) {
	got, err := NormalizeState("ca")
	require.NoError(t, err)
	assert.Equal(t, "CA", got)

	got, err = NormalizeState("New York")
	require.NoError(t, err)
	assert.Equal(t, "NY", got)

	got, err = NormalizeState("district of columbia")
	require.NoError(t, err)
	assert.Equal(t, "DC", got)

	_, err = NormalizeState("ZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestSanitizeMarks tests cleanup of mark descriptions
func TestSanitizeMarks(t *testing.T) {
	got := SanitizeMarks([]string{"  scar on hand ", `tattoo <"x">`, "", "   "})
	assert.Equal(t, []string{"scar on hand", "tattoo x"}, got)
}

// TestFormatHeight tests the display form
func TestFormatHeight(t *testing.T) {
	assert.Equal(t, `5'8"`, FormatHeight(68))
	assert.Equal(t, "6'", FormatHeight(72))
	assert.Equal(t, "Unknown", FormatHeight(0))
}

// TestFormatConfidence tests the percentage bands
func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "HIGH (85%)", FormatConfidence(0.85))
	assert.Equal(t, "MEDIUM (67%)", FormatConfidence(0.667))
	assert.Equal(t, "LOW (45%)", FormatConfidence(0.45))
	assert.Equal(t, "VERY LOW (20%)", FormatConfidence(0.2))
}
