// Package lexicon maps food-term spelling variants to canonical forms:
// abbreviations ("pb" → "peanut butter"), regional names ("curd" → "yogurt"),
// alternative spellings ("yoghurt" → "yogurt"). The normalizer consults it
// after stopword and plural handling, so variants are stored in their
// normalized singular form.
package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table stores synonym groups with a bidirectional view: canonical → all
// variants, and variant → canonical.
type Table struct {
	// canonical -> all variants (including canonical itself)
	synonyms map[string][]string

	// variant -> canonical
	reverseIndex map[string]string
}

// New creates an empty table.
func New() *Table {
	return &Table{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// Builtin returns the default food synonym table.
func Builtin() *Table {
	t := New()
	t.AddGroup("peanut butter", []string{"pb", "peanutbutter"})
	t.AddGroup("yogurt", []string{"yoghurt", "curd", "dahi"})
	t.AddGroup("oatmeal", []string{"oats", "porridge"})
	t.AddGroup("orange juice", []string{"oj"})
	t.AddGroup("dal", []string{"daal", "dhal"})
	t.AddGroup("chapati", []string{"roti", "phulka"})
	return t
}

// LoadFromYAML loads synonym groups from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: peanut butter
//	    variants: [pb, peanutbutter]
//	  - canonical: yogurt
//	    variants: [yoghurt, curd]
//
// Multi-token canonicals and variants are supported; everything is
// lowercased.
func LoadFromYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	t := New()
	for _, entry := range config.Synonyms {
		t.AddGroup(entry.Canonical, entry.Variants)
	}
	return t, nil
}

// AddGroup adds a synonym group with a canonical form and its variants.
// The canonical form is always the first entry of the stored variant list.
// If the group already exists, its old reverse index entries are cleaned up
// first.
func (t *Table) AddGroup(canonical string, variants []string) {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if canonical == "" {
		return
	}

	if oldVariants, exists := t.synonyms[canonical]; exists {
		for _, oldV := range oldVariants {
			delete(t.reverseIndex, oldV)
		}
	}

	normalized := make([]string, 0, len(variants)+1)
	seen := map[string]bool{canonical: true}
	normalized = append(normalized, canonical)

	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" && !seen[v] {
			normalized = append(normalized, v)
			seen[v] = true
		}
	}

	t.synonyms[canonical] = normalized
	for _, v := range normalized {
		t.reverseIndex[v] = canonical
	}
}

// Canonical returns the canonical form of a term, or the term itself when it
// is not in the table.
//
//	Canonical("pb")      -> "peanut butter"
//	Canonical("unknown") -> "unknown"
func (t *Table) Canonical(term string) string {
	term = strings.ToLower(term)
	if canonical, ok := t.reverseIndex[term]; ok {
		return canonical
	}
	return term
}

// Has reports whether the term appears in any synonym group.
func (t *Table) Has(term string) bool {
	_, ok := t.reverseIndex[strings.ToLower(term)]
	return ok
}

// Variants returns all known forms of a term, canonical first. A term not in
// the table yields a single-element slice containing the term itself.
func (t *Table) Variants(term string) []string {
	term = strings.ToLower(term)
	if canonical, ok := t.reverseIndex[term]; ok {
		if variants, ok := t.synonyms[canonical]; ok {
			return variants
		}
	}
	return []string{term}
}

// Groups returns the number of synonym groups.
func (t *Table) Groups() int {
	return len(t.synonyms)
}
