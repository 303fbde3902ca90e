package entities

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in the currency's minor unit.
//
// All stored amounts and all aggregation happen on Cents; conversion to a
// decimal happens once, at the presentation boundary. Commission math divides
// only after summing, so repeated aggregation cannot drift.

type Cents int64

// CentsFromFloat converts a decimal amount (as received in a JSON payload)
// into minor units, rounding to the nearest cent.
func CentsFromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// String renders the amount as a plain decimal ("1234.50"). Presentation
// use only.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 renders the amount as a decimal. Presentation use only.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// Percent applies an integer percentage. The division happens last, on the
// already-aggregated amount, per the settlement rounding rules.
func (c Cents) Percent(pct int64) Cents {
	return Cents(int64(c) * pct / 100)
}
