package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/uyouii/kpi-visuals/utils"
)

var bandCarry = decimal.NewFromInt(smallNumberLimit)

// Compact renders the integer part of value with a k/M/B/T suffix, e.g.
// 1500 -> "2k", 1234 (1 decimal) -> "1.2k", -2500 -> "-3k".
//
// Numbers under 1000 are printed as is. Numbers with more than 16 digits use
// scientific notation with "x10^" as exponent marker. The digits kept after the
// band cut are rounded half-up, and a result that rounds to 1000 moves to the
// next band. Values that are not numbers give "NaN".
func Compact(value float64, decimals int) string {
	decimals = utils.IntMax(decimals, 0)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NaNText
	}

	number := math.Trunc(value)
	sign := ""
	if number < 0 {
		sign = "-"
	}
	unsigned := math.Abs(number)
	digits := strconv.FormatFloat(unsigned, 'f', 0, 64)

	if unsigned < smallNumberLimit {
		return sign + digits
	}

	if len(digits) > magnitudeBands[0].digits+exponentialExtraDigits {
		return strings.Replace(strconv.FormatFloat(number, 'e', decimals, 64), "e+", exponentMarker, 1)
	}

	bandIndex := bandFor(len(digits))
	band := magnitudeBands[bandIndex]

	cut := len(digits) - band.digits + 1
	whole := digits[:cut]
	buffer := digits[cut:utils.IntMin(cut+decimals+1, len(digits))]
	if len(buffer) < decimals+1 {
		buffer += strings.Repeat("0", decimals+1-len(buffer))
	}

	rounded := decimal.RequireFromString(whole + "." + buffer).Round(int32(decimals))
	if rounded.GreaterThanOrEqual(bandCarry) && bandIndex > 0 {
		rounded = rounded.Shift(-3)
		band = magnitudeBands[bandIndex-1]
	}

	return sign + rounded.StringFixed(int32(decimals)) + band.suffix
}

func bandFor(digitCount int) int {
	for i, band := range magnitudeBands {
		if digitCount >= band.digits {
			return i
		}
	}
	return len(magnitudeBands) - 1
}
