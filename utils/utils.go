package utils

import "math"

// RoundFloat rounds f to precision decimal places by power-of-ten scaling.
// NaN and Inf are returned unchanged, and so is f when the scaling overflows.
func RoundFloat(f float64, precision int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	if precision <= 0 {
		return math.Round(f)
	}
	power := math.Pow10(precision)
	if math.IsInf(power, 0) {
		return f
	}
	scaled := f * power
	if math.IsInf(scaled, 0) {
		return f
	}
	return math.Round(scaled) / power
}

func IntAbs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
