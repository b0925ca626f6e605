package card

import (
	"context"
	"fmt"

	"github.com/uyouii/kpi-visuals/common"
	"github.com/uyouii/kpi-visuals/config"
	"github.com/uyouii/kpi-visuals/format"
	"github.com/uyouii/kpi-visuals/model"
	"github.com/uyouii/kpi-visuals/threshold"
	"github.com/uyouii/kpi-visuals/trend"
	"github.com/uyouii/kpi-visuals/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	changeDecimals      = 2
	axisDecimals        = 1
	axisPercentDecimals = 0
)

// Input is the latest state of a KPI plus the series drawn under it.
type Input struct {
	Metric  string
	Measure float64
	// Change is a ratio, 0.12 is shown as 12.00%
	Change float64
	// State selects the change color
	State float64
	Chart model.Series
}

// Card is everything a number card needs before drawing, as plain values.
type Card struct {
	Metric       string
	Measure      string
	MeasureColor string

	ChangeText  string
	ChangeColor string
	ChangeLabel string

	ImageURL   string
	ImageScale float64

	ChartType  string
	ChartColor string
	TrendColor string
	YDomain    [2]float64
	AxisLabels []string
	// nil when the trend is off or cannot be fitted
	Trend *trend.Line
}

// BuildCard composes the formatters, classifiers and trend fitter for one card.
// Nil settings mean the defaults.
func BuildCard(ctx context.Context, in Input, settings *config.Settings) (res *Card, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("BuildCard recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("chart", in.Chart.DebugString()))
			res, err = nil, fmt.Errorf("%w: %v", common.ErrorInternal, r)
		}
	}()

	if settings == nil {
		if settings, err = config.Default(); err != nil {
			logger.Error("load default settings failed", zap.Error(err))
			return nil, err
		}
	}

	spec, err := settings.FormatSpec()
	if err != nil {
		logger.Error("invalid format settings", zap.Error(err))
		return nil, err
	}
	rules, err := settings.ThresholdRules()
	if err != nil {
		logger.Error("invalid threshold rules", zap.Error(err))
		return nil, err
	}

	card := &Card{
		Metric:       in.Metric,
		Measure:      format.New(spec).Format(in.Measure),
		MeasureColor: threshold.Classify(in.Measure, rules, settings.DefaultColor),
		ChangeText:   format.Percent(in.Change, changeDecimals),
		ChangeColor:  settings.ChangeBands().Classify(in.State),
		ChangeLabel:  settings.Change.Text,
		ImageURL:     settings.Image.URL,
		ImageScale:   settings.Image.Scale,
		ChartType:    settings.Chart.Type,
		ChartColor:   settings.Chart.Color,
		TrendColor:   settings.Chart.TrendColor,
	}

	values := in.Chart.FiniteValues()
	if len(values) > 0 {
		card.YDomain = [2]float64{0, floats.Max(values)}
	}
	card.AxisLabels = axisLabels(card.YDomain, settings.Chart.Ticks, format.ChooseMode(values))

	if settings.Chart.ShowTrend {
		if line, ok := trend.Overlay(in.Chart); ok {
			card.Trend = &line
		} else {
			logger.Debug("skip trend line", zap.Int("sampleCount", in.Chart.Len()))
		}
	}

	return card, nil
}

// axisLabels splits the domain into ticks even steps and labels each boundary.
func axisLabels(domain [2]float64, ticks int, mode model.FormatMode) []string {
	if ticks <= 0 {
		return nil
	}
	decimals := axisDecimals
	if mode == model.PercentageMode {
		decimals = axisPercentDecimals
	}
	formatter := format.New(model.FormatSpec{
		Mode:      mode,
		Decimals:  model.Decimals(decimals),
		Lowercase: true,
	})
	lower, upper := domain[0], domain[1]
	values := make([]float64, ticks+1)
	for i := range values {
		values[i] = lower + (upper-lower)*float64(i)/float64(ticks)
	}
	return formatter.Labels(values)
}
