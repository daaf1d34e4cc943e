// Package csvdb reads and writes food databases as CSV files. One row per
// food, aliases pipe-separated in a single cell. Plain per-100g tables that
// carry no serving or canonical-name columns load too: the canonical name
// defaults to the lowercased display name and the serving size to 100 g.
package csvdb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/internalerr"
)

// columns is the full header, in the order Write emits it.
var columns = []string{
	"canonical_name",
	"display_name",
	"aliases",
	"calories_per_100g",
	"protein_g",
	"carbs_g",
	"fat_g",
	"serving_size_g",
	"serving_description",
}

// requiredColumns must be present in any loadable file.
var requiredColumns = []string{
	"display_name",
	"calories_per_100g",
	"protein_g",
	"carbs_g",
	"fat_g",
}

// Source is a foodb.Source backed by a CSV file. CSV carries no version
// metadata, so Version names the dataset; when empty, the file name without
// its extension is used.
type Source struct {
	Path    string
	Version string
}

// Load reads and parses the CSV file. Column order is irrelevant; columns
// are resolved by header name.
func (s Source) Load(_ context.Context) ([]foodb.Entry, string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, "", fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, "", fmt.Errorf("%w: %s is missing column %q", internalerr.ErrInvalidConfig, s.Path, name)
		}
	}

	var entries []foodb.Entry
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", line, err)
		}

		entry, err := parseRecord(record, col)
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}

	return entries, s.version(), nil
}

func (s Source) version() string {
	if s.Version != "" {
		return s.Version
	}
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func parseRecord(record []string, col map[string]int) (foodb.Entry, error) {
	e := foodb.Entry{
		DisplayName:        field(record, col, "display_name"),
		CanonicalName:      field(record, col, "canonical_name"),
		ServingDescription: field(record, col, "serving_description"),
	}
	if e.CanonicalName == "" {
		e.CanonicalName = strings.ToLower(e.DisplayName)
	}

	if raw := field(record, col, "aliases"); raw != "" {
		for _, alias := range strings.Split(raw, "|") {
			if alias = strings.TrimSpace(alias); alias != "" {
				e.Aliases = append(e.Aliases, alias)
			}
		}
	}

	var err error
	if e.CaloriesPer100g, err = parseFloat(record, col, "calories_per_100g"); err != nil {
		return foodb.Entry{}, err
	}
	if e.ProteinPer100g, err = parseFloat(record, col, "protein_g"); err != nil {
		return foodb.Entry{}, err
	}
	if e.CarbsPer100g, err = parseFloat(record, col, "carbs_g"); err != nil {
		return foodb.Entry{}, err
	}
	if e.FatPer100g, err = parseFloat(record, col, "fat_g"); err != nil {
		return foodb.Entry{}, err
	}

	// An absent serving column or cell means the food is tracked per 100 g.
	if raw := strings.TrimSpace(field(record, col, "serving_size_g")); raw == "" {
		e.ServingSizeG = 100
	} else if e.ServingSizeG, err = strconv.ParseFloat(raw, 64); err != nil {
		return foodb.Entry{}, fmt.Errorf("parse serving_size_g %q: %w", raw, err)
	}

	return e, nil
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func parseFloat(record []string, col map[string]int, name string) (float64, error) {
	raw := strings.TrimSpace(field(record, col, name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	return v, nil
}

// Write writes entries to path with the full header. The output loads back
// through Source unchanged.
func Write(path string, entries []foodb.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return err
	}
	for _, e := range entries {
		record := []string{
			e.CanonicalName,
			e.DisplayName,
			strings.Join(e.Aliases, "|"),
			formatFloat(e.CaloriesPer100g),
			formatFloat(e.ProteinPer100g),
			formatFloat(e.CarbsPer100g),
			formatFloat(e.FatPer100g),
			formatFloat(e.ServingSizeG),
			e.ServingDescription,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
