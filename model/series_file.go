package model

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/uyouii/kpi-visuals/common"
	"gopkg.in/yaml.v3"
)

// SeriesFile is the on-disk form of the data a card or chart is built from.
// JSON documents are accepted too since they are valid YAML.
type SeriesFile struct {
	Temporal bool           `yaml:"temporal"`
	Metric   string         `yaml:"metric"`
	Measure  float64        `yaml:"measure"`
	Change   float64        `yaml:"change"`
	State    float64        `yaml:"state"`
	Measures []MeasureEntry `yaml:"measures"`
}

type MeasureEntry struct {
	Name   string       `yaml:"name"`
	Mode   string       `yaml:"mode"`
	Points []PointEntry `yaml:"points"`
}

// PointEntry positions a value by time, by explicit position, or by its index
// in that order. A null value is a missing sample.
type PointEntry struct {
	Time     *time.Time `yaml:"time"`
	Position *float64   `yaml:"position"`
	Value    *float64   `yaml:"value"`
}

func LoadSeriesFile(path string) (*SeriesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeriesFile(data)
}

func ParseSeriesFile(data []byte) (*SeriesFile, error) {
	file := &SeriesFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("parse series file: %w", err)
	}
	if len(file.Measures) == 0 {
		return nil, fmt.Errorf("%w: no measures", common.ErrorEmptySeries)
	}
	return file, nil
}

// Series converts measure i into a Series.
func (f *SeriesFile) Series(i int) (Series, error) {
	if f == nil || i < 0 || i >= len(f.Measures) {
		return Series{}, fmt.Errorf("%w: measure %d", common.ErrorInvalidValue, i)
	}
	points := f.Measures[i].Points
	samples := make([]Sample, len(points))
	for j, point := range points {
		samples[j] = point.sample(j)
	}
	return Series{Temporal: f.Temporal, Samples: samples}, nil
}

func (p PointEntry) sample(index int) Sample {
	sample := Sample{Position: float64(index), Value: math.NaN()}
	switch {
	case p.Time != nil:
		sample.Position = TimePosition(*p.Time)
	case p.Position != nil:
		sample.Position = *p.Position
	}
	if p.Value != nil {
		sample.Value = *p.Value
	}
	return sample
}
