// Package mealio loads evaluation datasets from JSONL files.
package mealio

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/plateworks/nutriq/pkg/nutriq/eval"
)

// LoadCases loads gold cases from a JSONL file, one case per line:
//
//	{"input": "2 slices of toast with butter", "expected_foods": ["toast", "butter"]}
//
// Malformed lines are skipped with a warning; a file with no valid cases is
// an error.
func LoadCases(path string) ([]eval.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var cases []eval.Case
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var c eval.Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if c.Input == "" {
			log.Printf("Warning: skipping case with empty input at line %d in %s", i+1, path)
			continue
		}
		cases = append(cases, c)
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("no valid cases found in %s", path)
	}

	return cases, nil
}

// LoadProbes loads misspelling probes from a JSONL file, one probe per line:
//
//	{"input": "chiken breast", "expected": "chicken"}
func LoadProbes(path string) ([]eval.Probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var probes []eval.Probe
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var p eval.Probe
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if p.Input == "" || p.Expected == "" {
			log.Printf("Warning: skipping incomplete probe at line %d in %s", i+1, path)
			continue
		}
		probes = append(probes, p)
	}

	if len(probes) == 0 {
		return nil, fmt.Errorf("no valid probes found in %s", path)
	}

	return probes, nil
}
