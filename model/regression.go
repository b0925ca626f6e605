package model

import "math"

// RegressionResult summarizes a least squares line y = Slope*x + Intercept.
type RegressionResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// Valid reports whether every field is finite.
func (r RegressionResult) Valid() bool {
	for _, v := range []float64{r.Slope, r.Intercept, r.RSquared} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r RegressionResult) At(x float64) float64 {
	return r.Slope*x + r.Intercept
}
