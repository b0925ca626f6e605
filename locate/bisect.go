package locate

import (
	"sort"

	"github.com/uyouii/kpi-visuals/model"
)

// Locate returns the smallest index i with series.Samples[i].Position >= query,
// or series.Len() when every position is below query. The series must be
// sorted ascending by position.
func Locate(series model.Series, query float64) int {
	samples := series.Samples
	return sort.Search(len(samples), func(i int) bool {
		return samples[i].Position >= query
	})
}

// Clamp limits i to [0, n-1]. It returns 0 when n is 0.
func Clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Nearest returns the sample shown for a hover at query.
func Nearest(series model.Series, query float64) (model.Sample, int, bool) {
	if series.IsEmpty() {
		return model.Sample{}, 0, false
	}
	i := Clamp(Locate(series, query), series.Len())
	return series.Samples[i], i, true
}
