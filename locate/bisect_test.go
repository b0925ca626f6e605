package locate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/kpi-visuals/model"
)

func newSeries(t *testing.T, positions ...float64) model.Series {
	t.Helper()
	series, err := model.NewSeries(positions, make([]float64, len(positions)))
	require.NoError(t, err)
	return series
}

func TestLocate(t *testing.T) {
	series := newSeries(t, 1, 3, 5)

	tests := []struct {
		name     string
		query    float64
		expected int
	}{
		{"BeforeFirst", 0, 0},
		{"OnFirst", 1, 0},
		{"ExactMatch", 3, 1},
		{"BetweenPicksRight", 4, 2},
		{"OnLast", 5, 2},
		{"AfterLast", 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Locate(series, tt.query))
		})
	}
}

func TestLocate_DuplicatesResolveLeftmost(t *testing.T) {
	series := newSeries(t, 1, 2, 2, 2, 3)
	assert.Equal(t, 1, Locate(series, 2))
	assert.Equal(t, 4, Locate(series, 2.5))
}

func TestLocate_Empty(t *testing.T) {
	assert.Equal(t, 0, Locate(model.Series{}, 10))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, Clamp(3, 3))
	assert.Equal(t, 0, Clamp(-1, 3))
	assert.Equal(t, 1, Clamp(1, 3))
	assert.Equal(t, 0, Clamp(5, 0))
}

func TestNearest(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)}
	series, err := model.NewTimeSeries(times, []float64{10, 20, 30})
	require.NoError(t, err)

	sample, i, ok := Nearest(series, model.TimePosition(base.AddDate(0, 0, 10)))
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 20.0, sample.Value)

	sample, i, ok = Nearest(series, model.TimePosition(base.AddDate(1, 0, 0)))
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 30.0, sample.Value)

	_, _, ok = Nearest(model.Series{}, 0)
	assert.False(t, ok)
}
