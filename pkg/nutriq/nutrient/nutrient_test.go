package nutrient

import (
	"math"
	"testing"
)

func TestTotalsZeroIsIdentity(t *testing.T) {
	v := Totals{Calories: 250, ProteinG: 12.5, CarbsG: 30, FatG: 8}

	if got := v.Add(Totals{}); got != v {
		t.Errorf("v + zero = %+v, want %+v", got, v)
	}
	if got := (Totals{}).Add(v); got != v {
		t.Errorf("zero + v = %+v, want %+v", got, v)
	}
}

func TestTotalsAddComponentWise(t *testing.T) {
	a := Totals{Calories: 100, ProteinG: 10, CarbsG: 20, FatG: 5}
	b := Totals{Calories: 50, ProteinG: 2.5, CarbsG: 7, FatG: 1}

	got := a.Add(b)
	want := Totals{Calories: 150, ProteinG: 12.5, CarbsG: 27, FatG: 6}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}

	// Commutative
	if b.Add(a) != got {
		t.Error("Add should be commutative")
	}
}

func TestForGrams(t *testing.T) {
	per100 := Totals{Calories: 280, ProteinG: 9, CarbsG: 49, FatG: 4}

	tests := []struct {
		name  string
		grams float64
		want  Totals
	}{
		{"exactly 100g", 100, per100},
		{"56g of toast", 56, Totals{Calories: 156.8, ProteinG: 5.04, CarbsG: 27.44, FatG: 2.24}},
		{"zero grams", 0, Totals{}},
		{"negative grams clamps to zero", -50, Totals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForGrams(per100, tt.grams)
			if !totalsClose(got, tt.want, 1e-9) {
				t.Errorf("ForGrams(%v) = %+v, want %+v", tt.grams, got, tt.want)
			}
		})
	}
}

func TestRoundedOneDecimal(t *testing.T) {
	v := Totals{Calories: 156.789, ProteinG: 5.04, CarbsG: 27.449, FatG: 2.25}
	got := v.Rounded()
	want := Totals{Calories: 156.8, ProteinG: 5, CarbsG: 27.4, FatG: 2.3}
	if !totalsClose(got, want, 1e-9) {
		t.Errorf("Rounded = %+v, want %+v", got, want)
	}
}

func TestIsZero(t *testing.T) {
	if !(Totals{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if (Totals{FatG: 0.1}).IsZero() {
		t.Error("non-zero fat should not report IsZero")
	}
}

func totalsClose(a, b Totals, eps float64) bool {
	return math.Abs(a.Calories-b.Calories) < eps &&
		math.Abs(a.ProteinG-b.ProteinG) < eps &&
		math.Abs(a.CarbsG-b.CarbsG) < eps &&
		math.Abs(a.FatG-b.FatG) < eps
}
