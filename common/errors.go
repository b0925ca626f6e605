package common

import "errors"

var (
	ErrorInvalidValue      = errors.New("invalid value")
	ErrorEmptySeries       = errors.New("empty series")
	ErrorLengthMismatch    = errors.New("positions and values length mismatch")
	ErrorUnknownComparator = errors.New("unknown comparator")
	ErrorUnknownMode       = errors.New("unknown format mode")
	ErrorInternal          = errors.New("internal error")
)
