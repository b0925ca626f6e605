package card

import (
	"github.com/uyouii/kpi-visuals/format"
	"github.com/uyouii/kpi-visuals/locate"
	"github.com/uyouii/kpi-visuals/model"
)

const (
	tooltipCompactDecimals = 2
	tooltipPercentDecimals = 0
)

// Measure is one line of a multi-line chart. An empty Mode is chosen from the
// series values.
type Measure struct {
	Name   string
	Series model.Series
	Mode   model.FormatMode
}

type TooltipItem struct {
	Header      string
	DisplayName string
	Value       string
}

// Tooltip returns one item per measure for a hover at query. The hovered
// sample is located on the first measure, whose position label becomes the
// header of the first item. Missing values are shown as 0.
func Tooltip(query float64, measures ...Measure) []TooltipItem {
	if len(measures) == 0 {
		return nil
	}
	_, index, ok := locate.Nearest(measures[0].Series, query)
	if !ok {
		return nil
	}

	items := make([]TooltipItem, 0, len(measures))
	for i, m := range measures {
		value := 0.0
		if index < m.Series.Len() {
			value = m.Series.Samples[index].ValueOr(0)
		}
		item := TooltipItem{
			DisplayName: m.Name,
			Value:       tooltipFormatter(m).Format(value),
		}
		if i == 0 {
			item.Header = m.Series.Label(index)
		}
		items = append(items, item)
	}
	return items
}

func tooltipFormatter(m Measure) *format.Formatter {
	mode := m.Mode
	if mode == "" {
		mode = format.ChooseMode(m.Series.Values())
	}
	switch mode {
	case model.CompactMode:
		return format.New(model.FormatSpec{
			Mode:      model.CompactMode,
			Decimals:  model.Decimals(tooltipCompactDecimals),
			Lowercase: true,
		})
	case model.PercentageMode:
		return format.New(model.FormatSpec{
			Mode:     model.PercentageMode,
			Decimals: model.Decimals(tooltipPercentDecimals),
		})
	}
	return format.New(model.FormatSpec{Mode: mode})
}
