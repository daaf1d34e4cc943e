// Package nutrient holds the macro totals type and the linear scaling rule
// used everywhere nutrients are computed.
package nutrient

import "math"

// Totals is the calorie/macro aggregate. The zero value is the additive
// identity; Add combines component-wise, so per-food values and daily totals
// share one type.
type Totals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Add returns the component-wise sum of t and other.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Calories: t.Calories + other.Calories,
		ProteinG: t.ProteinG + other.ProteinG,
		CarbsG:   t.CarbsG + other.CarbsG,
		FatG:     t.FatG + other.FatG,
	}
}

// Scale returns t multiplied by factor in every component.
func (t Totals) Scale(factor float64) Totals {
	return Totals{
		Calories: t.Calories * factor,
		ProteinG: t.ProteinG * factor,
		CarbsG:   t.CarbsG * factor,
		FatG:     t.FatG * factor,
	}
}

// IsZero reports whether every component is exactly zero.
func (t Totals) IsZero() bool {
	return t.Calories == 0 && t.ProteinG == 0 && t.CarbsG == 0 && t.FatG == 0
}

// Rounded returns t with every component rounded to one decimal place.
// Rounding is a presentation concern only; pipeline arithmetic never rounds.
func (t Totals) Rounded() Totals {
	round1 := func(v float64) float64 {
		return math.Round(v*10) / 10
	}
	return Totals{
		Calories: round1(t.Calories),
		ProteinG: round1(t.ProteinG),
		CarbsG:   round1(t.CarbsG),
		FatG:     round1(t.FatG),
	}
}

// ForGrams scales per-100g reference values to a portion of the given grams.
// Nutrients scale linearly: per100g * grams / 100. Negative grams are treated
// as zero so totals stay non-negative.
func ForGrams(per100g Totals, grams float64) Totals {
	if grams <= 0 {
		return Totals{}
	}
	return per100g.Scale(grams / 100)
}
