package kernel

import "math"

// RoundMoney rounds a monetary value to two decimal places using round half
// away from zero. It is applied to final figures only, never to intermediate
// sums, to avoid cumulative rounding drift across line items.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
