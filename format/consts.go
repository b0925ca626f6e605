package format

const (
	// NaNText is returned for values that are not numbers.
	NaNText = "NaN"

	smallNumberLimit = 1000
	// beyond the largest band plus this many digits the number goes exponential
	exponentialExtraDigits = 3
	exponentMarker         = "x10^"
)

type magnitudeBand struct {
	digits int
	suffix string
}

// largest first
var magnitudeBands = []magnitudeBand{
	{digits: 13, suffix: "T"},
	{digits: 10, suffix: "B"},
	{digits: 7, suffix: "M"},
	{digits: 4, suffix: "k"},
}
