package model

import "strings"

// Horizon is the investment time frame a scoring run targets.
type Horizon string

const (
	HorizonShort Horizon = "short" // under five years
	HorizonLong  Horizon = "long"  // five years and beyond
)

// ParseHorizon normalizes user input to a Horizon. "court" is accepted as a
// synonym for short; anything else defaults to long.
func ParseHorizon(s string) Horizon {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "court":
		return HorizonShort
	default:
		return HorizonLong
	}
}
