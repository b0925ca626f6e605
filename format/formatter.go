package format

import (
	"math"
	"strings"

	"github.com/uyouii/kpi-visuals/model"
	"gonum.org/v1/gonum/floats"
)

// Formatter formats numbers according to a FormatSpec.
type Formatter struct {
	spec      model.FormatSpec
	decimals  int
	thousands string
	decimal   string
}

func New(spec model.FormatSpec) *Formatter {
	if spec.Mode == "" {
		spec.Mode = model.CompactMode
	}
	thousands, decimal := spec.Separators()
	return &Formatter{
		spec:      spec,
		decimals:  spec.EffectiveDecimals(),
		thousands: thousands,
		decimal:   decimal,
	}
}

func (f *Formatter) Spec() model.FormatSpec {
	return f.spec
}

func (f *Formatter) Format(value float64) string {
	var res string
	switch f.spec.Mode {
	case model.PercentageMode:
		res = Decimal(value*100, f.decimals, f.thousands, f.decimal) + "%"
	case model.DecimalMode:
		res = Decimal(value, f.decimals, f.thousands, f.decimal)
	default:
		res = Compact(value, f.decimals)
	}
	if f.spec.Lowercase {
		res = strings.ToLower(res)
	}
	return res
}

// Labels formats every value, e.g. a list of axis ticks.
func (f *Formatter) Labels(values []float64) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = f.Format(v)
	}
	return res
}

// ChooseMode picks compact formatting for series whose largest finite value is
// above 1 and percentage formatting for ratio series.
func ChooseMode(values []float64) model.FormatMode {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) > 0 && floats.Max(finite) > 1 {
		return model.CompactMode
	}
	return model.PercentageMode
}
