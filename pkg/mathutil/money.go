// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/agriprofit/transport-compare/pkg/constants"
)

// RoundRupee rounds a value to the nearest whole rupee. All per-field cost
// amounts are carried as whole rupees.
func RoundRupee(val float64) float64 {
	return math.Round(val)
}

// Round rounds a value to two decimals, used for percentage figures.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total, guarding
// against a zero denominator.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// CeilDiv returns ceil(numerator/denominator) as an int, never less than 1
// for positive numerators.
func CeilDiv(numerator, denominator float64) int {
	if denominator <= 0 {
		return 1
	}
	n := int(math.Ceil(numerator / denominator))
	if n < 1 {
		n = 1
	}
	return n
}
