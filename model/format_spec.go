package model

import (
	"fmt"

	"github.com/uyouii/kpi-visuals/common"
)

type FormatMode string

const (
	CompactMode    FormatMode = "compact"
	PercentageMode FormatMode = "percentage"
	DecimalMode    FormatMode = "decimal"
)

const (
	DefaultThousandsSeparator = ","
	DefaultDecimalSeparator   = "."
)

func ParseFormatMode(s string) (FormatMode, error) {
	switch mode := FormatMode(s); mode {
	case CompactMode, PercentageMode, DecimalMode:
		return mode, nil
	case "":
		return CompactMode, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownMode, s)
}

// FormatSpec describes how a single number is turned into display text.
// A nil Decimals means "use the mode default".
type FormatSpec struct {
	Mode               FormatMode
	Decimals           *int
	ThousandsSeparator string
	DecimalSeparator   string
	// Lowercase lower-cases the output, the axis and tooltip convention for compact suffixes.
	Lowercase bool
}

func Decimals(n int) *int {
	return &n
}

// EffectiveDecimals is 0 for compact mode and 2 otherwise when Decimals is unset.
func (f FormatSpec) EffectiveDecimals() int {
	if f.Decimals != nil {
		if *f.Decimals < 0 {
			return 0
		}
		return *f.Decimals
	}
	if f.Mode == CompactMode || f.Mode == "" {
		return 0
	}
	return 2
}

func (f FormatSpec) Separators() (thousands string, decimal string) {
	thousands, decimal = f.ThousandsSeparator, f.DecimalSeparator
	if thousands == "" {
		thousands = DefaultThousandsSeparator
	}
	if decimal == "" {
		decimal = DefaultDecimalSeparator
	}
	return thousands, decimal
}

func (f FormatSpec) Validate() error {
	if f.Decimals != nil && *f.Decimals < 0 {
		return fmt.Errorf("%w: decimals %d", common.ErrorInvalidValue, *f.Decimals)
	}
	if _, err := ParseFormatMode(string(f.Mode)); err != nil {
		return err
	}
	return nil
}
