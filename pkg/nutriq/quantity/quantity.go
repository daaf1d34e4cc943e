// Package quantity extracts a leading amount and unit from a food-mention
// span: "2 slices toast" → amount 2, unit slice, residual "toast". The scan
// is greedy and left-anchored; anything it cannot parse degrades to the
// default one-serving quantity with the whole span as residual.
package quantity

import (
	"math"
	"strconv"
	"strings"
)

// Spec is an extracted quantity.
type Spec struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Unit names produced by Extract. Count marks a bare numeral ("2 eggs");
// Serving marks an absent quantity. Both resolve through the serving size.
const (
	Serving = "serving"
	Count   = "count"
)

// Default is the quantity assumed when a span carries none.
func Default() Spec {
	return Spec{Amount: 1, Unit: Serving}
}

// wordNumbers are the spelled-out amounts recognized in leading position.
var wordNumbers = map[string]float64{
	"a": 1, "an": 1, "half": 0.5,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// unitNames maps every recognized unit token to its canonical name.
var unitNames = map[string]string{
	"slice": "slice", "slices": "slice",
	"cup": "cup", "cups": "cup",
	"piece": "piece", "pieces": "piece",
	"bowl": "bowl", "bowls": "bowl",
	"glass": "glass", "glasses": "glass",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"serving": Serving, "servings": Serving,
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
}

// Extract parses the leading quantity of a span and returns it with the
// residual food text. No quantity, a malformed one ("3/0"), or a
// non-positive one all yield the default spec with the whole span as
// residual. Linear in the span length, no backtracking.
func Extract(span string) (Spec, string) {
	fields := strings.Fields(span)
	if len(fields) == 0 {
		return Default(), ""
	}

	amount, ok := parseAmount(strings.ToLower(fields[0]))
	if !ok {
		return Default(), strings.Join(fields, " ")
	}

	spec := Spec{Amount: amount, Unit: Count}
	rest := fields[1:]

	if len(rest) > 0 {
		if unit, isUnit := unitNames[strings.ToLower(rest[0])]; isUnit {
			spec.Unit = unit
			rest = rest[1:]
			// "2 cups of rice": the trailing "of" belongs to the quantity.
			if len(rest) > 0 && strings.EqualFold(rest[0], "of") {
				rest = rest[1:]
			}
		}
	}

	return spec, strings.Join(rest, " ")
}

// parseAmount reads one token as a number: digits, a decimal, a simple
// fraction, or a word number. Only finite positive values count.
func parseAmount(token string) (float64, bool) {
	if v, ok := wordNumbers[token]; ok {
		return v, true
	}

	if num, den, isFrac := strings.Cut(token, "/"); isFrac {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return validAmount(n / d)
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return validAmount(v)
}

func validAmount(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
