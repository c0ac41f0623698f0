// Package units handles quantity unit parsing and conversion. Mandi pricing
// is quoted per quintal while the calculation core works in kilograms.
package units

import (
	"fmt"
	"strings"

	"github.com/agriprofit/transport-compare/pkg/constants"
)

// Unit is a supported quantity unit.
type Unit string

const (
	Kilogram Unit = "kg"
	Quintal  Unit = "quintal"
	Ton      Unit = "ton"
)

// Parse normalizes a user-supplied unit string into a Unit.
func Parse(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "kg", "kgs", "kilogram", "kilograms":
		return Kilogram, nil
	case "quintal", "quintals", "qtl":
		return Quintal, nil
	case "ton", "tons", "tonne", "tonnes", "mt":
		return Ton, nil
	default:
		return "", fmt.Errorf("unsupported quantity unit %q (expected kg, quintal, or ton)", value)
	}
}

// ToKg converts a quantity in the given unit to kilograms.
func ToKg(quantity float64, unit Unit) (float64, error) {
	switch unit {
	case Kilogram:
		return quantity, nil
	case Quintal:
		return quantity * constants.KgPerQuintal, nil
	case Ton:
		return quantity * constants.KgPerTon, nil
	default:
		return 0, fmt.Errorf("unsupported quantity unit %q", unit)
	}
}

// KgToQuintals converts kilograms to quintals.
func KgToQuintals(kg float64) float64 {
	return kg / constants.KgPerQuintal
}

// KgToTons converts kilograms to metric tons.
func KgToTons(kg float64) float64 {
	return kg / constants.KgPerTon
}

// QuintalPriceToKg converts a per-quintal modal price to a per-kg price.
func QuintalPriceToKg(pricePerQuintal float64) float64 {
	return pricePerQuintal / constants.KgPerQuintal
}
