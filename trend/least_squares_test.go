package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/kpi-visuals/common"
	"github.com/uyouii/kpi-visuals/model"
)

const tolerance = 1e-9

func TestFit_PerfectLine(t *testing.T) {
	res, err := Fit([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Slope, tolerance)
	assert.InDelta(t, 0, res.Intercept, tolerance)
	assert.InDelta(t, 1, res.RSquared, tolerance)
	assert.True(t, res.Valid())
}

func TestFit_NoisyLine(t *testing.T) {
	// y = 1 + x with residuals +1, -1, -1, +1
	res, err := Fit([]float64{1, 2, 3, 4}, []float64{3, 2, 3, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Slope, tolerance)
	assert.InDelta(t, 1, res.Intercept, tolerance)
	// Sxy = 5, Sxx = 5, Syy = 9
	assert.InDelta(t, 25.0/45.0, res.RSquared, tolerance)
}

func TestFit_ZeroVarianceX(t *testing.T) {
	res, err := Fit([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.Slope) || math.IsInf(res.Slope, 0))
	assert.False(t, res.Valid())

	single, err := Fit([]float64{1}, []float64{5})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(single.Slope))
}

func TestFit_InvalidInput(t *testing.T) {
	_, err := Fit(nil, nil)
	assert.ErrorIs(t, err, common.ErrorEmptySeries)

	_, err = Fit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, common.ErrorLengthMismatch)
}

func TestFit_DoesNotMutateInput(t *testing.T) {
	xs, ys := []float64{1, 2, 3}, []float64{5, 7, 9}
	_, err := Fit(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, xs)
	assert.Equal(t, []float64{5, 7, 9}, ys)
}

func TestFitRanked(t *testing.T) {
	res, err := FitRanked([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.InDelta(t, 10, res.Slope, tolerance)
	assert.InDelta(t, 0, res.Intercept, tolerance)
	assert.Equal(t, []float64{1, 2, 3}, Ranks(3))
}

func TestOverlay(t *testing.T) {
	series, err := model.NewSeries([]float64{100, 200, 300, 400}, []float64{2, 4, 6, 8})
	require.NoError(t, err)

	line, ok := Overlay(series)
	require.True(t, ok)
	assert.Equal(t, 100.0, line.StartPosition)
	assert.Equal(t, 400.0, line.EndPosition)
	assert.InDelta(t, 2, line.StartValue, tolerance)
	assert.InDelta(t, 8, line.EndValue, tolerance)
}

func TestOverlay_FlatSeries(t *testing.T) {
	line, ok := Overlay(model.NewIndexedSeries([]float64{5, 5, 5}))
	require.True(t, ok)
	assert.InDelta(t, 5, line.StartValue, tolerance)
	assert.InDelta(t, 5, line.EndValue, tolerance)
	assert.True(t, math.IsNaN(line.Fit.RSquared))
}

func TestOverlay_Skipped(t *testing.T) {
	_, ok := Overlay(model.Series{})
	assert.False(t, ok)

	_, ok = Overlay(model.NewIndexedSeries([]float64{1}))
	assert.False(t, ok)

	_, ok = Overlay(model.NewIndexedSeries([]float64{1, math.NaN(), 3}))
	assert.False(t, ok)
}
