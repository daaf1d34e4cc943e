// Package nutriq converts free-text meal descriptions into structured
// nutrient reports. Text flows through a fixed pipeline: segmentation into
// sections and spans, quantity extraction, term normalization, database
// matching, and gram resolution, ending in a report with per-item nutrients
// and aggregate totals. The pipeline is pure computation over an immutable
// food database; nothing is persisted between calls.
package nutriq

import (
	"context"
	"sync/atomic"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/lexicon"
	"github.com/plateworks/nutriq/pkg/nutriq/match"
	"github.com/plateworks/nutriq/pkg/nutriq/normalize"
	"github.com/plateworks/nutriq/pkg/nutriq/nutrient"
	"github.com/plateworks/nutriq/pkg/nutriq/quantity"
	"github.com/plateworks/nutriq/pkg/nutriq/report"
	"github.com/plateworks/nutriq/pkg/nutriq/segment"
	"github.com/plateworks/nutriq/pkg/nutriq/units"
)

// Analyzer is the meal-text analysis engine facade.
type Analyzer struct {
	segmenter  *segment.Segmenter
	normalizer *normalize.Normalizer
	threshold  float64
	state      atomic.Pointer[dbState]
}

// dbState pairs a database snapshot with its matcher so one Analyze call
// sees one consistent view even while SwapDB runs.
type dbState struct {
	db      *foodb.DB
	matcher *match.Matcher
}

// Options configures an Analyzer. The zero value selects the built-in food
// database, stopwords, synonym table, meal labels, and fuzzy threshold.
type Options struct {
	Source     foodb.Source   // food database source; nil means the built-in dataset
	Stopwords  []string       // normalizer stopwords; nil means normalize.DefaultStopwords
	Lexicon    *lexicon.Table // synonym table; nil means lexicon.Builtin
	MealLabels []string       // section labels; nil means segment.DefaultLabels
	Threshold  float64        // fuzzy match threshold; 0 means match.DefaultThreshold
}

// New creates an Analyzer with the given dependencies. The database is
// loaded and validated here; a structurally invalid dataset fails
// construction rather than surfacing later.
func New(ctx context.Context, opts Options) (*Analyzer, error) {
	normalizer := normalize.New(opts.Stopwords)
	if opts.Lexicon != nil {
		normalizer.SetLexicon(opts.Lexicon)
	} else {
		normalizer.SetLexicon(lexicon.Builtin())
	}

	a := &Analyzer{
		segmenter:  segment.New(opts.MealLabels),
		normalizer: normalizer,
		threshold:  opts.Threshold,
	}

	src := opts.Source
	if src == nil {
		src = foodb.Static{Entries: foodb.BuiltinEntries(), Version: foodb.BuiltinVersion}
	}
	if err := a.SwapDB(ctx, src); err != nil {
		return nil, err
	}
	return a, nil
}

// Analyze runs the pipeline over one meal description. It is deterministic
// for a fixed database version, never fails, and is safe for concurrent use.
func (a *Analyzer) Analyze(text string) report.Report {
	state := a.state.Load()
	builder := report.NewBuilder(state.db.Version())

	for _, section := range a.segmenter.Segment(text) {
		for _, span := range section.Spans {
			builder.Add(a.analyzeSpan(state, section.Label, span))
		}
	}
	return builder.Build()
}

// analyzeSpan takes one span through extraction, normalization, matching,
// and gram resolution.
func (a *Analyzer) analyzeSpan(state *dbState, label, span string) report.Item {
	spec, residual := quantity.Extract(span)
	term := a.normalizer.Normalize(residual)
	res := state.matcher.Match(term)

	item := report.Item{
		Span:     span,
		Section:  label,
		Tier:     res.Tier,
		Matched:  res.Matched,
		Score:    res.Score,
		Quantity: spec,
	}
	if res.Tier == match.TierNone {
		return item
	}

	entry := state.db.Entry(res.Entry)
	item.Food = entry.DisplayName
	item.Grams = units.Resolve(spec, entry.ServingSizeG)
	item.Nutrients = nutrient.ForGrams(entry.PerHundredGrams(), item.Grams)
	return item
}

// SwapDB loads a new database from src and atomically replaces the current
// one. In-flight Analyze calls finish on the snapshot they started with; the
// old database stays valid on error.
func (a *Analyzer) SwapDB(ctx context.Context, src foodb.Source) error {
	db, err := foodb.Open(ctx, src, a.normalizer.Normalize)
	if err != nil {
		return err
	}
	a.state.Store(&dbState{db: db, matcher: match.New(db, a.threshold)})
	return nil
}

// DB returns the current database snapshot.
func (a *Analyzer) DB() *foodb.DB {
	return a.state.Load().db
}
