package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uyouii/kpi-visuals/model"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		spec     model.FormatSpec
		value    float64
		expected string
	}{
		{"DefaultIsCompact", model.FormatSpec{}, 1500, "2k"},
		{"CompactDecimals", model.FormatSpec{Mode: model.CompactMode, Decimals: model.Decimals(1)}, 2500000, "2.5M"},
		{"CompactLowercase", model.FormatSpec{Mode: model.CompactMode, Decimals: model.Decimals(1), Lowercase: true}, 2500000, "2.5m"},
		{"PercentageDefaultDecimals", model.FormatSpec{Mode: model.PercentageMode}, 0.5, "50.00%"},
		{"PercentageNoDecimals", model.FormatSpec{Mode: model.PercentageMode, Decimals: model.Decimals(0)}, 0.257, "26%"},
		{"DecimalDefaultDecimals", model.FormatSpec{Mode: model.DecimalMode}, 1234.5, "1,234.50"},
		{"DecimalSeparators", model.FormatSpec{
			Mode:               model.DecimalMode,
			Decimals:           model.Decimals(1),
			ThousandsSeparator: ".",
			DecimalSeparator:   ",",
		}, 1234567.25, "1.234.567,3"},
		{"DecimalHugePrecision", model.FormatSpec{Mode: model.DecimalMode, Decimals: model.Decimals(400)}, 0, "0." + strings.Repeat("0", 400)},
		{"PercentageHugePrecision", model.FormatSpec{Mode: model.PercentageMode, Decimals: model.Decimals(400)}, 0.5, "50." + strings.Repeat("0", 400) + "%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.spec).Format(tt.value))
		})
	}
}

func TestFormatter_Labels(t *testing.T) {
	f := New(model.FormatSpec{Mode: model.CompactMode, Lowercase: true})
	assert.Equal(t, []string{"0", "500", "1k", "2m"}, f.Labels([]float64{0, 500, 1000, 1500000}))
	assert.Empty(t, f.Labels(nil))
}

func TestChooseMode(t *testing.T) {
	assert.Equal(t, model.PercentageMode, ChooseMode([]float64{0.1, 0.5}))
	assert.Equal(t, model.PercentageMode, ChooseMode([]float64{0.1, 1}))
	assert.Equal(t, model.CompactMode, ChooseMode([]float64{0.5, 3}))
	assert.Equal(t, model.PercentageMode, ChooseMode(nil))
	assert.Equal(t, model.PercentageMode, ChooseMode([]float64{math.NaN(), 0.2, math.Inf(1)}))
}
