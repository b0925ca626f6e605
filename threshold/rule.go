package threshold

import (
	"fmt"
	"strings"

	"github.com/uyouii/kpi-visuals/common"
)

type Comparator string

const (
	GreaterThan Comparator = "gt"
	LessThan    Comparator = "lt"
	Equal       Comparator = "eq"
)

func ParseComparator(s string) (Comparator, error) {
	switch c := Comparator(strings.ToLower(strings.TrimSpace(s))); c {
	case GreaterThan, LessThan, Equal:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownComparator, s)
}

// Holds reports whether value compares to bound. Unknown comparators never hold.
func (c Comparator) Holds(value, bound float64) bool {
	switch c {
	case GreaterThan:
		return value > bound
	case LessThan:
		return value < bound
	case Equal:
		return value == bound
	}
	return false
}

// Rule maps a numeric condition to a label such as a color.
// A rule without a bound or with the zero label never participates.
type Rule[T comparable] struct {
	Enabled    bool
	Comparator Comparator
	Bound      *float64
	Label      T
}

func Bound(v float64) *float64 {
	return &v
}

func (r Rule[T]) Active(value float64) bool {
	var zero T
	if !r.Enabled || r.Bound == nil || r.Label == zero {
		return false
	}
	return r.Comparator.Holds(value, *r.Bound)
}

// Classify scans every rule in order and returns the label of the last one
// that matches value, or def when none does.
func Classify[T comparable](value float64, rules []Rule[T], def T) T {
	res := def
	for _, rule := range rules {
		if rule.Active(value) {
			res = rule.Label
		}
	}
	return res
}
