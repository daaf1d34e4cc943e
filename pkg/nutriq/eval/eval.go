// Package eval scores food detection quality: precision/recall/F1 over gold
// meal descriptions, robustness to misspelled food names, and the match rate
// on foods that are deliberately absent from the database. The built-in sets
// double as a regression harness for the fuzzy match threshold.
package eval

import (
	"strings"

	"github.com/plateworks/nutriq/pkg/nutriq/match"
	"github.com/plateworks/nutriq/pkg/nutriq/report"
)

// Risk classification bounds. An analyzer that matches more than a third of
// the unseen foods is inventing matches; one that resolves fewer than 40% of
// the misspelling probes is too strict to be useful.
const (
	unseenHighRisk  = 0.3
	robustnessFloor = 0.4
)

// Risk levels reported by Run.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Analyzer is the slice of the pipeline the evaluator drives.
type Analyzer interface {
	Analyze(text string) report.Report
}

// Case is one gold example: a meal description and the foods a correct
// analysis detects. Expected names match by substring against the detected
// display names, so "chicken" accepts "Chicken Breast". A case with a
// positive MaxCalories additionally checks that the report total lands
// inside [MinCalories, MaxCalories].
type Case struct {
	Input         string   `json:"input"`
	ExpectedFoods []string `json:"expected_foods"`
	MinCalories   float64  `json:"min_calories,omitempty"`
	MaxCalories   float64  `json:"max_calories,omitempty"`
}

// Probe pairs a misspelled food term with the food it should still resolve
// to.
type Probe struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// Metrics aggregates detection quality over a gold set.
type Metrics struct {
	Precision       float64 `json:"precision"`
	Recall          float64 `json:"recall"`
	F1              float64 `json:"f1_score"`
	CorrectMatches  int     `json:"correct_matches"`
	DetectedFoods   int     `json:"detected_foods"`
	ExpectedFoods   int     `json:"expected_foods"`
	CaloriesInRange int     `json:"calories_in_range"`
	RangeChecked    int     `json:"range_checked"`
}

// ProbeResult is the outcome of one misspelling probe.
type ProbeResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
	OK       bool   `json:"ok"`
}

// Robustness aggregates the misspelling probes.
type Robustness struct {
	Score  float64       `json:"score"`
	Probes []ProbeResult `json:"probes"`
}

// Generalization reports how often inputs outside the database still
// produced a match. Matched lists the offending inputs.
type Generalization struct {
	MatchRate float64  `json:"match_rate"`
	Matched   []string `json:"matched,omitempty"`
}

// Summary is the full evaluation result.
type Summary struct {
	Detection      Metrics        `json:"detection"`
	Robustness     Robustness     `json:"robustness"`
	Generalization Generalization `json:"generalization"`
	Risk           string         `json:"risk"`
}

// EvaluateDetection runs the gold cases and scores detected foods against
// expected foods. Every matched item counts as a detection; each expected
// food counts as correct when its name appears inside any detected name.
func EvaluateDetection(a Analyzer, cases []Case) Metrics {
	var m Metrics

	for _, c := range cases {
		rep := a.Analyze(c.Input)

		var detected []string
		for _, item := range rep.Items {
			if item.Tier == match.TierNone {
				continue
			}
			detected = append(detected, strings.ToLower(item.Food))
		}

		m.ExpectedFoods += len(c.ExpectedFoods)
		m.DetectedFoods += len(detected)

		for _, want := range c.ExpectedFoods {
			want = strings.ToLower(want)
			for _, got := range detected {
				if strings.Contains(got, want) {
					m.CorrectMatches++
					break
				}
			}
		}

		if c.MaxCalories > 0 {
			m.RangeChecked++
			if rep.Totals.Calories >= c.MinCalories && rep.Totals.Calories <= c.MaxCalories {
				m.CaloriesInRange++
			}
		}
	}

	if m.DetectedFoods > 0 {
		m.Precision = float64(m.CorrectMatches) / float64(m.DetectedFoods)
	}
	if m.ExpectedFoods > 0 {
		m.Recall = float64(m.CorrectMatches) / float64(m.ExpectedFoods)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m
}

// EvaluateRobustness runs each misspelling probe through the analyzer and
// checks that the first detected food contains the expected name.
func EvaluateRobustness(a Analyzer, probes []Probe) Robustness {
	r := Robustness{Probes: make([]ProbeResult, 0, len(probes))}

	hits := 0
	for _, p := range probes {
		rep := a.Analyze(p.Input)

		var got string
		for _, item := range rep.Items {
			if item.Tier != match.TierNone {
				got = item.Food
				break
			}
		}

		ok := got != "" && strings.Contains(strings.ToLower(got), strings.ToLower(p.Expected))
		if ok {
			hits++
		}
		r.Probes = append(r.Probes, ProbeResult{
			Input:    p.Input,
			Expected: p.Expected,
			Got:      got,
			OK:       ok,
		})
	}

	if len(probes) > 0 {
		r.Score = float64(hits) / float64(len(probes))
	}
	return r
}

// EvaluateGeneralization feeds inputs that should match nothing and records
// which of them still produced a match.
func EvaluateGeneralization(a Analyzer, inputs []string) Generalization {
	var g Generalization

	for _, input := range inputs {
		rep := a.Analyze(input)
		for _, item := range rep.Items {
			if item.Tier != match.TierNone {
				g.Matched = append(g.Matched, input)
				break
			}
		}
	}

	if len(inputs) > 0 {
		g.MatchRate = float64(len(g.Matched)) / float64(len(inputs))
	}
	return g
}

// Run evaluates the analyzer against all built-in sets and classifies the
// overall risk: high when unseen foods match too often, moderate when
// misspellings resolve too rarely, low otherwise.
func Run(a Analyzer) Summary {
	return RunSets(a, BuiltinGold(), BuiltinMisspellings(), BuiltinUnseen())
}

// RunSets is Run with caller-supplied sets.
func RunSets(a Analyzer, cases []Case, probes []Probe, unseen []string) Summary {
	s := Summary{
		Detection:      EvaluateDetection(a, cases),
		Robustness:     EvaluateRobustness(a, probes),
		Generalization: EvaluateGeneralization(a, unseen),
	}

	switch {
	case s.Generalization.MatchRate > unseenHighRisk:
		s.Risk = RiskHigh
	case s.Robustness.Score < robustnessFloor:
		s.Risk = RiskModerate
	default:
		s.Risk = RiskLow
	}
	return s
}

// BuiltinGold returns the embedded gold cases. Calorie bands are calibrated
// to the built-in database.
func BuiltinGold() []Case {
	return []Case{
		{
			Input:         "2 slices whole wheat bread with butter and scrambled eggs",
			ExpectedFoods: []string{"bread", "butter", "egg"},
			MinCalories:   250, MaxCalories: 450,
		},
		{
			Input:         "grilled chicken breast with brown rice and broccoli",
			ExpectedFoods: []string{"chicken", "rice", "broccoli"},
			MinCalories:   350, MaxCalories: 500,
		},
		{
			Input:         "greek yogurt with blueberries and almonds",
			ExpectedFoods: []string{"yogurt", "blueberries", "almonds"},
			MinCalories:   200, MaxCalories: 350,
		},
		{
			Input:         "idli with coconut chutney and a glass of orange juice",
			ExpectedFoods: []string{"idli", "chutney", "orange juice"},
			MinCalories:   150, MaxCalories: 350,
		},
		{
			Input:         "oatmeal with banana and peanut butter",
			ExpectedFoods: []string{"oatmeal", "banana", "peanut butter"},
			MinCalories:   250, MaxCalories: 500,
		},
	}
}

// BuiltinUnseen returns meal descriptions built from foods deliberately
// absent from the built-in database.
func BuiltinUnseen() []string {
	return []string{
		"quinoa with kale and tahini",
		"dragon fruit smoothie",
		"tempeh stir fry",
		"nutritional yeast flakes",
		"jackfruit tacos",
	}
}

// BuiltinMisspellings returns the misspelling probes.
func BuiltinMisspellings() []Probe {
	return []Probe{
		{Input: "chiken breast", Expected: "chicken"},
		{Input: "tomatoe", Expected: "tomato"},
		{Input: "brocoli", Expected: "broccoli"},
		{Input: "yoghurt", Expected: "yogurt"},
		{Input: "bred", Expected: "bread"},
	}
}
