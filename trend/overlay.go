package trend

import (
	"math"

	"github.com/uyouii/kpi-visuals/model"
)

// Line is a trend overlay: the fitted line evaluated at the first and last
// rank, placed on the positions of the first and last samples.
type Line struct {
	StartPosition float64
	StartValue    float64
	EndPosition   float64
	EndValue      float64
	Fit           model.RegressionResult
}

// Overlay fits the series values against their ranks. It reports false for
// series with at most one sample and for fits without a finite line, e.g.
// when a value is missing.
func Overlay(series model.Series) (Line, bool) {
	n := series.Len()
	if n <= 1 {
		return Line{}, false
	}

	fit, err := FitRanked(series.Values())
	if err != nil {
		return Line{}, false
	}
	if !finite(fit.Slope) || !finite(fit.Intercept) {
		return Line{}, false
	}

	return Line{
		StartPosition: series.Samples[0].Position,
		StartValue:    fit.At(1),
		EndPosition:   series.Samples[n-1].Position,
		EndValue:      fit.At(float64(n)),
		Fit:           fit,
	}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
