// Package report assembles pipeline results into the final nutrient report:
// one line item per food-mention span, aggregate totals, and the list of
// spans that matched nothing. Reports are plain data, built fresh per
// request and stable under JSON marshaling.
package report

import (
	"github.com/plateworks/nutriq/pkg/nutriq/match"
	"github.com/plateworks/nutriq/pkg/nutriq/nutrient"
	"github.com/plateworks/nutriq/pkg/nutriq/quantity"
)

// Item is the outcome for a single span, in input order.
type Item struct {
	Span      string          `json:"span"`
	Section   string          `json:"section"`
	Food      string          `json:"food,omitempty"`
	Tier      match.Tier      `json:"tier"`
	Matched   string          `json:"matched,omitempty"`
	Score     float64         `json:"score"`
	Quantity  quantity.Spec   `json:"quantity"`
	Grams     float64         `json:"grams"`
	Nutrients nutrient.Totals `json:"nutrients"`
}

// Report is the full analysis result. Totals is always the component-wise
// sum of the item nutrients; Unmatched lists the raw span text of every item
// whose tier is none. DatabaseVersion identifies the dataset revision the
// numbers came from.
type Report struct {
	Items           []Item          `json:"items"`
	Totals          nutrient.Totals `json:"totals"`
	Unmatched       []string        `json:"unmatched"`
	DatabaseVersion string          `json:"database_version"`
}

// Builder accumulates items in span order and derives the aggregate fields.
type Builder struct {
	items     []Item
	totals    nutrient.Totals
	unmatched []string
	version   string
}

// NewBuilder creates a builder for a report against the given database
// version.
func NewBuilder(databaseVersion string) *Builder {
	return &Builder{
		items:     []Item{},
		unmatched: []string{},
		version:   databaseVersion,
	}
}

// Add appends one item. Unmatched items contribute their span to the
// unmatched list and zeros to the totals.
func (b *Builder) Add(item Item) {
	b.items = append(b.items, item)
	b.totals = b.totals.Add(item.Nutrients)
	if item.Tier == match.TierNone {
		b.unmatched = append(b.unmatched, item.Span)
	}
}

// Build returns the assembled report. The builder can keep accumulating
// afterwards; the returned report owns its slices.
func (b *Builder) Build() Report {
	items := make([]Item, len(b.items))
	copy(items, b.items)
	unmatched := make([]string, len(b.unmatched))
	copy(unmatched, b.unmatched)

	return Report{
		Items:           items,
		Totals:          b.totals,
		Unmatched:       unmatched,
		DatabaseVersion: b.version,
	}
}
