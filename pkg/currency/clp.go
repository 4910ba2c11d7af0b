// Package currency converts catalog prices (USD) into Chilean pesos.
// The rate is a fixed multiplier supplied by configuration; CLP has no
// decimal subdivision, so amounts are integer pesos.
package currency

import "math"

// DefaultCLPRate is the fallback USD to CLP multiplier.
const DefaultCLPRate = 950.0

// ToCLP converts a USD amount to integer pesos, rounding half away
// from zero. Non-positive rates fall back to DefaultCLPRate.
func ToCLP(usd float64, rate float64) int64 {
	if rate <= 0 {
		rate = DefaultCLPRate
	}
	return int64(math.Round(usd * rate))
}
