// Package units resolves extracted quantities into grams. Units fall in two
// classes: mass units convert through fixed factors and ignore the food
// entirely; every other unit counts servings of the matched food, so the
// gram weight of "a slice" or "a cup" lives in the database entry, not in a
// unit table.
package units

import "github.com/plateworks/nutriq/pkg/nutriq/quantity"

// massGrams holds the gram weight of one mass unit.
var massGrams = map[string]float64{
	"g":  1,
	"kg": 1000,
	"oz": 28.3495,
	"lb": 453.592,
}

// MassGrams returns the gram factor for a mass unit, or false for any other
// unit.
func MassGrams(unit string) (float64, bool) {
	f, ok := massGrams[unit]
	return f, ok
}

// Resolve converts a quantity into grams for a food whose serving weighs
// servingSizeG grams. Mass units bypass the serving size; everything else,
// including bare counts and absent units, scales it.
func Resolve(spec quantity.Spec, servingSizeG float64) float64 {
	if f, ok := massGrams[spec.Unit]; ok {
		return spec.Amount * f
	}
	return spec.Amount * servingSizeG
}
