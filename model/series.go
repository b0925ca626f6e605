package model

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/uyouii/kpi-visuals/common"
)

const labelDateLayout = "2006-01-02"

// Sample is one (position, value) pair of a series. A missing value is NaN.
type Sample struct {
	Position float64
	Value    float64
}

func (s Sample) Missing() bool {
	return math.IsNaN(s.Value)
}

// Time interprets the position as a Unix millisecond timestamp.
func (s Sample) Time() time.Time {
	return time.UnixMilli(int64(s.Position)).UTC()
}

// ValueOr returns the sample value, or fallback when it is missing.
func (s Sample) ValueOr(fallback float64) float64 {
	if s.Missing() {
		return fallback
	}
	return s.Value
}

// Series is an ordered list of samples, one per reporting period.
// Temporal series carry Unix millisecond positions, the others carry indexes.
// Duplicate positions are kept in sequence order.
type Series struct {
	Temporal bool
	Samples  []Sample
}

func NewSeries(positions, values []float64) (Series, error) {
	if len(positions) != len(values) {
		return Series{}, fmt.Errorf("%w: %d positions, %d values",
			common.ErrorLengthMismatch, len(positions), len(values))
	}
	samples := make([]Sample, len(positions))
	for i := range positions {
		samples[i] = Sample{Position: positions[i], Value: values[i]}
	}
	return Series{Samples: samples}, nil
}

func NewTimeSeries(times []time.Time, values []float64) (Series, error) {
	positions := make([]float64, len(times))
	for i, t := range times {
		positions[i] = TimePosition(t)
	}
	series, err := NewSeries(positions, values)
	if err != nil {
		return Series{}, err
	}
	series.Temporal = true
	return series, nil
}

// NewIndexedSeries numbers values 0..n-1.
func NewIndexedSeries(values []float64) Series {
	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{Position: float64(i), Value: v}
	}
	return Series{Samples: samples}
}

func TimePosition(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

func (s *Series) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Series) Positions() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, s.Len())
	for i, sample := range s.Samples {
		res[i] = sample.Position
	}
	return res
}

// Values returns the sample values, missing ones included as NaN.
func (s *Series) Values() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, s.Len())
	for i, sample := range s.Samples {
		res[i] = sample.Value
	}
	return res
}

// FiniteValues drops missing and infinite values.
func (s *Series) FiniteValues() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, 0, s.Len())
	for _, sample := range s.Samples {
		if math.IsNaN(sample.Value) || math.IsInf(sample.Value, 0) {
			continue
		}
		res = append(res, sample.Value)
	}
	return res
}

// Label renders the position of sample i for headers and legends.
func (s *Series) Label(i int) string {
	if i < 0 || i >= s.Len() {
		return ""
	}
	sample := s.Samples[i]
	if s.Temporal {
		return sample.Time().Format(labelDateLayout)
	}
	return strconv.FormatFloat(sample.Position, 'f', -1, 64)
}

func (s *Series) DebugString() string {
	if s == nil {
		return "nil series"
	}
	return fmt.Sprintf("temporal: %v, sampleCount: %v", s.Temporal, s.Len())
}
