package format

import (
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/uyouii/kpi-visuals/model"
	"github.com/uyouii/kpi-visuals/utils"
)

// Decimal renders value with exactly precision fractional digits and the
// integer part grouped by thousands, e.g. Decimal(1234.5, 1, ",", ".") == "1,234.5".
// A negative precision is taken by absolute value.
func Decimal(value float64, precision int, thousandsSep, decimalSep string) string {
	if math.IsNaN(value) {
		return NaNText
	}
	if math.IsInf(value, 0) {
		if value < 0 {
			return "-Inf"
		}
		return "Inf"
	}

	precision = utils.IntAbs(precision)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	magnitude := math.Abs(value)
	rounded := utils.RoundFloat(magnitude, precision)
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) {
		// scaling overflowed, the value has no fractional digits left anyway
		rounded = magnitude
	}

	fixed := decimal.NewFromFloat(rounded).StringFixed(int32(precision))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(groupThousands(intPart, thousandsSep))
	if precision > 0 {
		sb.WriteString(decimalSep)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// FormatNumber is Decimal with "," and "." separators.
func FormatNumber(value float64, precision int) string {
	return Decimal(value, precision, model.DefaultThousandsSeparator, model.DefaultDecimalSeparator)
}

// Percent renders a ratio as a percentage, 0.1234 -> "12.34%" with 2 decimals.
func Percent(ratio float64, decimals int) string {
	return FormatNumber(ratio*100, decimals) + "%"
}

func groupThousands(digits, sep string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return digits
	}
	grouped := humanize.BigComma(n)
	if sep != "," {
		grouped = strings.ReplaceAll(grouped, ",", sep)
	}
	return grouped
}
