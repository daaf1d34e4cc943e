// Package normalize canonicalizes food terms for matching: lowercasing,
// punctuation and stopword removal, plural folding, and synonym substitution.
// The same Normalizer must process both database terms (at index build) and
// query spans (at match time) so the two sides meet in one canonical space.
package normalize

import (
	"strings"
	"unicode"

	"github.com/plateworks/nutriq/pkg/nutriq/lexicon"
)

// Normalizer holds the normalization vocabulary.
type Normalizer struct {
	stopwords map[string]struct{}
	keepS     map[string]struct{} // terms whose lemma ends in s; plural folding skips them
	lexicon   *lexicon.Table      // Optional: for synonym substitution
}

// New creates a normalizer with the given stopword list. A nil list means
// DefaultStopwords.
func New(stopwords []string) *Normalizer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	keep := make(map[string]struct{}, len(pluralExceptions))
	for _, w := range pluralExceptions {
		keep[w] = struct{}{}
	}
	return &Normalizer{stopwords: stops, keepS: keep}
}

// SetLexicon assigns a synonym table. When set, normalized terms are folded
// to their canonical forms: whole-term first ("pb" → "peanut butter"), then
// token by token ("curd rice" → "yogurt rice").
func (n *Normalizer) SetLexicon(tab *lexicon.Table) {
	n.lexicon = tab
}

// Normalize canonicalizes a food term. Deterministic and total: any input,
// including empty or all-noise, yields a (possibly empty) string.
func (n *Normalizer) Normalize(term string) string {
	tokens := n.Tokens(term)
	if len(tokens) == 0 {
		return ""
	}

	joined := strings.Join(tokens, " ")
	if n.lexicon == nil {
		return joined
	}
	if n.lexicon.Has(joined) {
		return n.lexicon.Canonical(joined)
	}
	for i, tok := range tokens {
		tokens[i] = n.lexicon.Canonical(tok)
	}
	return strings.Join(tokens, " ")
}

// Tokens splits a term into cleaned tokens before synonym substitution:
// lowercased, punctuation stripped, numeric-only and stopword tokens dropped,
// plurals folded.
func (n *Normalizer) Tokens(term string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := n.processToken(current.String())
		if word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range term {
		// Hyphens split like any other punctuation: "whole-wheat" and
		// "whole wheat" must normalize identically.
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// processToken applies numeric filtering, stopword filtering, and plural
// folding to a single token.
func (n *Normalizer) processToken(token string) string {
	if token == "" || len(token) <= 1 {
		return ""
	}
	if isNumericOnly(token) {
		return ""
	}
	if n.isStopword(token) {
		return ""
	}
	return n.singularize(token)
}

// singularize folds a plural token to its singular form. Terms whose lemma
// ends in s (oats, hummus, swiss) are left alone.
func (n *Normalizer) singularize(token string) string {
	if _, keep := n.keepS[token]; keep {
		return token
	}
	if len(token) > 4 && strings.HasSuffix(token, "ies") {
		return token[:len(token)-3] + "y"
	}
	for _, suffix := range esSuffixes {
		if len(token) > len(suffix)+1 && strings.HasSuffix(token, suffix) {
			return token[:len(token)-2]
		}
	}
	if len(token) > 2 && strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") && !strings.HasSuffix(token, "us") {
		return token[:len(token)-1]
	}
	return token
}

// esSuffixes are the endings where plural "es" is stripped rather than a
// bare "s": dishes → dish, tomatoes → tomato, glasses → glass.
var esSuffixes = []string{"ches", "shes", "sses", "xes", "zes", "oes"}

// pluralExceptions are food terms whose lemma ends in s.
var pluralExceptions = []string{
	"hummus", "couscous", "asparagus", "molasses", "oats", "grits", "swiss",
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (n *Normalizer) isStopword(word string) bool {
	_, ok := n.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list.
func (n *Normalizer) AddStopword(word string) {
	n.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (n *Normalizer) RemoveStopword(word string) {
	delete(n.stopwords, strings.ToLower(word))
}

// AddPluralException marks a term whose trailing s is part of the lemma.
func (n *Normalizer) AddPluralException(word string) {
	n.keepS[strings.ToLower(word)] = struct{}{}
}

// DefaultStopwords returns the default stopword list: function words, meal
// words, portion nouns, and preparation modifiers that carry no identity
// ("grilled chicken breast" and "chicken breast" are the same food).
func DefaultStopwords() []string {
	return []string{
		// function words and narration
		"a", "an", "the", "of", "with", "and", "some", "for", "on", "in",
		"to", "then", "i", "we", "my", "had", "have", "has", "ate", "eat",
		"eating", "drank", "drink",
		// meal words that survive segmentation ("oatmeal for breakfast")
		"breakfast", "lunch", "dinner", "snack", "morning", "afternoon",
		"evening", "today",
		// size and preparation modifiers
		"small", "large", "medium", "big",
		"boiled", "fried", "grilled", "cooked", "raw", "baked", "steamed",
		"fresh", "scrambled", "roasted", "plain",
		// portion nouns left dangling when no quantity precedes them
		"slice", "slices", "cup", "cups", "bowl", "bowls", "glass",
		"glasses", "piece", "pieces", "tbsp", "tsp", "serving", "servings",
		"plate", "plates",
	}
}
