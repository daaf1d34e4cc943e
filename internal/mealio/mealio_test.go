package mealio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCases(t *testing.T) {
	path := writeFile(t, "gold.jsonl",
		`{"input": "2 slices of toast", "expected_foods": ["toast"], "min_calories": 100, "max_calories": 200}
{"input": "greek yogurt with almonds", "expected_foods": ["yogurt", "almonds"]}
`)

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("cases = %d, want 2", len(cases))
	}
	if cases[0].Input != "2 slices of toast" || cases[0].MaxCalories != 200 {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
	if len(cases[1].ExpectedFoods) != 2 {
		t.Errorf("expected foods = %v", cases[1].ExpectedFoods)
	}
}

func TestLoadCasesSkipsMalformed(t *testing.T) {
	path := writeFile(t, "gold.jsonl",
		`{"input": "toast", "expected_foods": ["toast"]}
not json at all
{"input": "", "expected_foods": ["rice"]}

{"input": "rice", "expected_foods": ["rice"]}
`)

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 2 {
		t.Errorf("cases = %d, want 2 (malformed and empty-input lines skipped)", len(cases))
	}
}

func TestLoadCasesAllInvalid(t *testing.T) {
	path := writeFile(t, "bad.jsonl", "garbage\n{broken\n")

	if _, err := LoadCases(path); err == nil {
		t.Error("file with no valid cases should fail")
	}
}

func TestLoadCasesMissingFile(t *testing.T) {
	if _, err := LoadCases("/nonexistent/gold.jsonl"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadProbes(t *testing.T) {
	path := writeFile(t, "probes.jsonl",
		`{"input": "chiken breast", "expected": "chicken"}
{"input": "tomatoe", "expected": "tomato"}
{"input": "no expectation"}
`)

	probes, err := LoadProbes(path)
	if err != nil {
		t.Fatalf("LoadProbes: %v", err)
	}
	if len(probes) != 2 {
		t.Fatalf("probes = %d, want 2 (incomplete probe skipped)", len(probes))
	}
	if probes[1].Input != "tomatoe" || probes[1].Expected != "tomato" {
		t.Errorf("unexpected second probe: %+v", probes[1])
	}
}

func TestLoadProbesAllInvalid(t *testing.T) {
	path := writeFile(t, "bad.jsonl", `{"input": "x"}`)

	if _, err := LoadProbes(path); err == nil {
		t.Error("file with no valid probes should fail")
	}
}
