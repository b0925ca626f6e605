package trend

import (
	"fmt"

	"github.com/uyouii/kpi-visuals/common"
	"github.com/uyouii/kpi-visuals/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fit computes the ordinary least squares line through (xs[i], ys[i]).
//
//	slope     = Sxy / Sxx
//	intercept = mean(y) - mean(x) * slope
//	rSquared  = Sxy^2 / (Sxx * Syy)
//
// When every x is equal Sxx is zero and the result holds NaN or Inf; callers
// skip series with at most one point.
func Fit(xs, ys []float64) (model.RegressionResult, error) {
	if len(xs) == 0 {
		return model.RegressionResult{}, common.ErrorEmptySeries
	}
	if len(xs) != len(ys) {
		return model.RegressionResult{}, fmt.Errorf("%w: %d xs, %d ys",
			common.ErrorLengthMismatch, len(xs), len(ys))
	}

	xBar := stat.Mean(xs, nil)
	yBar := stat.Mean(ys, nil)

	dx := centered(xs, xBar)
	dy := centered(ys, yBar)

	ssXX := floats.Dot(dx, dx)
	ssYY := floats.Dot(dy, dy)
	ssXY := floats.Dot(dx, dy)

	slope := ssXY / ssXX
	return model.RegressionResult{
		Slope:     slope,
		Intercept: yBar - xBar*slope,
		RSquared:  ssXY * ssXY / (ssXX * ssYY),
	}, nil
}

// FitRanked fits ys against their 1-based ranks 1..n.
func FitRanked(ys []float64) (model.RegressionResult, error) {
	return Fit(Ranks(len(ys)), ys)
}

// Ranks returns 1..n.
func Ranks(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i + 1)
	}
	return res
}

func centered(values []float64, mean float64) []float64 {
	res := make([]float64, len(values))
	copy(res, values)
	floats.AddConst(-mean, res)
	return res
}
