// Package foodb defines the curated food reference database: immutable
// entries, the derived lookup index, and the Source interface loaders
// implement. A DB is built once, validated, and shared read-only; reloads
// replace the whole DB value, never mutate it.
package foodb

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/plateworks/nutriq/pkg/nutriq/internalerr"
	"github.com/plateworks/nutriq/pkg/nutriq/nutrient"
)

// Entry is one food record. All nutrient fields are per 100 g; ServingSizeG
// converts count-style quantities ("2 slices") into grams.
type Entry struct {
	DisplayName        string
	CanonicalName      string
	Aliases            []string
	CaloriesPer100g    float64
	ProteinPer100g     float64
	CarbsPer100g       float64
	FatPer100g         float64
	ServingSizeG       float64
	ServingDescription string
}

// PerHundredGrams returns the entry's reference nutrients as a Totals value.
func (e Entry) PerHundredGrams() nutrient.Totals {
	return nutrient.Totals{
		Calories: e.CaloriesPer100g,
		ProteinG: e.ProteinPer100g,
		CarbsG:   e.CarbsPer100g,
		FatG:     e.FatPer100g,
	}
}

// Validate checks the structural invariants of a single entry.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.CanonicalName) == "" {
		return fmt.Errorf("%w: empty canonical name", internalerr.ErrInvalidEntry)
	}
	if e.ServingSizeG <= 0 {
		return fmt.Errorf("%w: %q has serving size %v g", internalerr.ErrInvalidEntry, e.CanonicalName, e.ServingSizeG)
	}
	if e.CaloriesPer100g < 0 || e.ProteinPer100g < 0 || e.CarbsPer100g < 0 || e.FatPer100g < 0 {
		return fmt.Errorf("%w: %q has a negative nutrient value", internalerr.ErrInvalidEntry, e.CanonicalName)
	}
	return nil
}

// Normalizer canonicalizes a term into its index form. Build applies it to
// every canonical name and alias; callers must apply the same function to
// lookup terms or the index will never hit.
type Normalizer func(string) string

// IndexTerm is one key of the derived lookup index.
type IndexTerm struct {
	Term  string // normalized
	Entry int    // position in the entry list
	Alias bool   // true when the key came from an alias, not the canonical name
}

// DB is the immutable food database: the ordered entry list plus the derived
// normalized-term index. Safe for concurrent readers without locking.
type DB struct {
	snapshotID string
	version    string
	entries    []Entry
	canonical  map[string]int // normalized canonical name → entry position
	aliases    map[string]int // normalized alias → entry position
	terms      []IndexTerm    // all index keys, insertion-ordered
}

// Build validates entries, derives the lookup index, and returns an immutable
// DB. Structural problems (duplicate canonical names, non-positive serving
// size, negative nutrients) fail here, before any request is served. The
// version string identifies the dataset revision and is echoed in reports;
// the snapshot ID identifies this particular load for logs.
func Build(entries []Entry, version string, norm Normalizer) (*DB, error) {
	if len(entries) == 0 {
		return nil, internalerr.ErrEmptyDatabase
	}
	if norm == nil {
		norm = defaultNormalize
	}

	db := &DB{
		snapshotID: ulid.Make().String(),
		version:    version,
		entries:    make([]Entry, len(entries)),
		canonical:  make(map[string]int, len(entries)),
		aliases:    make(map[string]int),
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(e.DisplayName) == "" {
			e.DisplayName = e.CanonicalName
		}
		e.Aliases = append([]string(nil), e.Aliases...)
		db.entries[i] = e

		key := norm(e.CanonicalName)
		if key == "" {
			return nil, fmt.Errorf("%w: %q normalizes to an empty term", internalerr.ErrInvalidEntry, e.CanonicalName)
		}
		if prev, ok := db.canonical[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both normalize to %q",
				internalerr.ErrDuplicateEntry, db.entries[prev].CanonicalName, e.CanonicalName, key)
		}
		db.canonical[key] = i
		db.terms = append(db.terms, IndexTerm{Term: key, Entry: i})
	}

	// Aliases are indexed after every canonical name so a canonical key always
	// wins a collision; within aliases, first insertion wins.
	for i, e := range db.entries {
		for _, alias := range e.Aliases {
			key := norm(alias)
			if key == "" {
				continue
			}
			if _, taken := db.canonical[key]; taken {
				continue
			}
			if _, taken := db.aliases[key]; taken {
				continue
			}
			db.aliases[key] = i
			db.terms = append(db.terms, IndexTerm{Term: key, Entry: i, Alias: true})
		}
	}

	return db, nil
}

// MustBuild is Build that panics on error, for datasets known to be valid.
func MustBuild(entries []Entry, version string, norm Normalizer) *DB {
	db, err := Build(entries, version, norm)
	if err != nil {
		panic(fmt.Sprintf("foodb: %v", err))
	}
	return db
}

// SnapshotID identifies this loaded instance (fresh ULID per Build).
func (db *DB) SnapshotID() string { return db.snapshotID }

// Version identifies the dataset revision the DB was built from.
func (db *DB) Version() string { return db.version }

// Len returns the number of entries.
func (db *DB) Len() int { return len(db.entries) }

// Entry returns a copy of the entry at position i.
func (db *DB) Entry(i int) Entry {
	e := db.entries[i]
	e.Aliases = append([]string(nil), e.Aliases...)
	return e
}

// Entries returns a copy of the ordered entry list.
func (db *DB) Entries() []Entry {
	out := make([]Entry, len(db.entries))
	for i := range db.entries {
		out[i] = db.Entry(i)
	}
	return out
}

// LookupCanonical resolves a normalized term against canonical names only.
func (db *DB) LookupCanonical(term string) (int, bool) {
	i, ok := db.canonical[term]
	return i, ok
}

// LookupAlias resolves a normalized term against aliases only.
func (db *DB) LookupAlias(term string) (int, bool) {
	i, ok := db.aliases[term]
	return i, ok
}

// IndexTerms returns every index key in deterministic insertion order:
// canonical names first, then aliases. The returned slice is shared; treat
// it as read-only.
func (db *DB) IndexTerms() []IndexTerm {
	return db.terms
}

func defaultNormalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
