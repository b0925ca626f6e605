package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		thousands string
		decimal   string
		expected  string
	}{
		{"Grouped", 1234567, 0, ",", ".", "1,234,567"},
		{"OneDecimal", 1234.5, 1, ",", ".", "1,234.5"},
		{"Negative", -1000, 0, ",", ".", "-1,000"},
		{"NoGroupingUnderFourDigits", 999, 0, ",", ".", "999"},
		{"ZeroPadded", 0, 2, ",", ".", "0.00"},
		{"RoundsAtPrecision", 1234.567, 2, ",", ".", "1,234.57"},
		{"RoundsHalfUp", 2.5, 0, ",", ".", "3"},
		{"NegativePrecisionUsesAbs", 1234.5, -1, ",", ".", "1,234.5"},
		{"CustomSeparators", 1234567.891, 2, ".", ",", "1.234.567,89"},
		{"MultiCharSeparator", 1234567, 0, "  ", ".", "1  234  567"},
		{"NegativeRoundingToZeroKeepsSign", -0.001, 2, ",", ".", "-0.00"},
		{"Large", 1e20, 0, ",", ".", "100,000,000,000,000,000,000"},
		{"PrecisionBeyondFloatRange", 1.5, 400, ",", ".", "1.5" + strings.Repeat("0", 399)},
		{"PrecisionAtFloatRange", 1.5, 309, ",", ".", "1.5" + strings.Repeat("0", 308)},
		{"LargeValueLargePrecision", 1e10, 300, ",", ".", "10,000,000,000." + strings.Repeat("0", 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decimal(tt.value, tt.precision, tt.thousands, tt.decimal))
		})
	}
}

func TestDecimal_NotANumber(t *testing.T) {
	assert.Equal(t, NaNText, Decimal(math.NaN(), 2, ",", "."))
	assert.Equal(t, "Inf", Decimal(math.Inf(1), 2, ",", "."))
	assert.Equal(t, "-Inf", Decimal(math.Inf(-1), 2, ",", "."))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567, 0))
	assert.Equal(t, FormatNumber(1234.5, 1), FormatNumber(1234.5, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.34%", Percent(0.1234, 2))
	assert.Equal(t, "-50.00%", Percent(-0.5, 2))
	assert.Equal(t, "150%", Percent(1.5, 0))
}
