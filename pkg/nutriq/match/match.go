// Package match resolves normalized food terms against the database index
// through a tiered cascade: exact canonical, exact alias, fuzzy similarity,
// then none. The cascade stops at the first tier that produces a hit, so an
// exact match is never outvoted by a fuzzy one.
package match

import (
	"math"
	"strings"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
)

// Tier identifies which cascade stage produced a result.
type Tier string

const (
	TierExact Tier = "exact"
	TierAlias Tier = "alias"
	TierFuzzy Tier = "fuzzy"
	TierNone  Tier = "none"
)

// DefaultThreshold is the minimum fuzzy similarity for a match. One edit in
// any term of two or more runes clears it.
const DefaultThreshold = 0.70

// Result describes one match attempt. Matched holds the index term that won,
// which may be an alias or a fuzzy neighbor of the query term; Score is 1
// for exact and alias hits and the similarity for fuzzy ones.
type Result struct {
	Term    string  `json:"term"`
	Tier    Tier    `json:"tier"`
	Entry   int     `json:"-"`
	Matched string  `json:"matched,omitempty"`
	Score   float64 `json:"score"`
}

// Matcher runs the cascade against one immutable database.
type Matcher struct {
	db        *foodb.DB
	threshold float64
}

// New creates a matcher over db. A threshold of 0 means DefaultThreshold.
func New(db *foodb.DB, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{db: db, threshold: threshold}
}

// Threshold returns the fuzzy acceptance threshold in use.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match resolves one normalized term. Deterministic: equal inputs against an
// equal database always return the same result.
func (m *Matcher) Match(term string) Result {
	none := Result{Term: term, Tier: TierNone, Entry: -1}
	if term == "" {
		return none
	}

	if i, ok := m.db.LookupCanonical(term); ok {
		return Result{Term: term, Tier: TierExact, Entry: i, Matched: term, Score: 1}
	}
	if i, ok := m.db.LookupAlias(term); ok {
		return Result{Term: term, Tier: TierAlias, Entry: i, Matched: term, Score: 1}
	}
	if r, ok := m.fuzzy(term); ok {
		return r
	}
	return none
}

// fuzzy scans every index term and keeps the best similarity at or above the
// threshold. Ties break on smaller edit distance, then on index insertion
// order.
func (m *Matcher) fuzzy(term string) (Result, bool) {
	qRunes := []rune(term)
	qTokens := strings.Fields(term)

	var best Result
	bestDist := math.MaxInt
	found := false

	for _, it := range m.db.IndexTerms() {
		score, dist := m.similarity(qRunes, qTokens, it.Term)
		if score < m.threshold {
			continue
		}
		if !found || score > best.Score || (score == best.Score && dist < bestDist) {
			best = Result{Term: term, Tier: TierFuzzy, Entry: it.Entry, Matched: it.Term, Score: score}
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// similarity scores a query against one candidate term as the better of an
// edit-distance ratio and a token-set Jaccard overlap. The ratio forgives
// misspellings ("chiken" ~ "chicken"); the overlap forgives token order
// ("breast chicken" ~ "chicken breast").
func (m *Matcher) similarity(qRunes []rune, qTokens []string, candidate string) (float64, int) {
	cRunes := []rune(candidate)
	sum := len(qRunes) + len(cRunes)
	if sum == 0 {
		return 1, 0
	}

	// Distances beyond maxDist cannot clear the threshold, so the
	// computation is cut off there.
	maxDist := int(float64(sum) * (1 - m.threshold))
	dist := levenshtein(qRunes, cRunes, maxDist)
	ratio := 1 - float64(dist)/float64(sum)

	if j := jaccard(qTokens, strings.Fields(candidate)); j > ratio {
		return j, dist
	}
	return ratio, dist
}

// levenshtein computes the edit distance between a and b, giving up once it
// is certain to exceed max; it returns max+1 in that case.
func levenshtein(a, b []rune, max int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	// The distance is at least the length difference.
	if len(b)-len(a) > max {
		return max + 1
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		rowMin := curr[0]
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min3(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
			if curr[i] < rowMin {
				rowMin = curr[i]
			}
		}
		if rowMin > max {
			return max + 1
		}
		prev, curr = curr, prev
	}

	if prev[len(a)] > max {
		return max + 1
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// jaccard calculates Jaccard similarity between two token sets.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	aSet := make(map[string]struct{}, len(a))
	for _, s := range a {
		aSet[s] = struct{}{}
	}

	bSet := make(map[string]struct{}, len(b))
	for _, s := range b {
		bSet[s] = struct{}{}
	}

	intersection := 0
	for s := range aSet {
		if _, ok := bSet[s]; ok {
			intersection++
		}
	}

	union := len(aSet) + len(bSet) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
