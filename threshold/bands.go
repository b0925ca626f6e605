package threshold

const (
	DefaultLimit1 = 0.33
	DefaultLimit2 = 0.67

	DefaultLowColor  = "#f02708"
	DefaultMidColor  = "#f3a30c"
	DefaultHighColor = "#37b012"
)

// Bands splits the number line at two ordered limits. Each limit belongs to
// the band below it.
type Bands[T any] struct {
	Limit1 float64
	Limit2 float64
	Low    T
	Mid    T
	High   T
}

// DefaultChangeBands colors a change state red, amber or green.
func DefaultChangeBands() Bands[string] {
	return Bands[string]{
		Limit1: DefaultLimit1,
		Limit2: DefaultLimit2,
		Low:    DefaultLowColor,
		Mid:    DefaultMidColor,
		High:   DefaultHighColor,
	}
}

func (b Bands[T]) Classify(value float64) T {
	if value <= b.Limit1 {
		return b.Low
	}
	if value <= b.Limit2 {
		return b.Mid
	}
	return b.High
}
