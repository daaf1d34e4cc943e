// Package segment splits free-text meal descriptions into labeled sections
// and food-mention spans. It is the first pipeline stage and a total
// function: any input yields zero or more sections, never an error.
package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Unlabeled is the label assigned to text appearing before the first meal
// label.
const Unlabeled = "Unlabeled"

// Section is one meal label with its food-mention spans in input order.
// Spans hold raw text; normalization happens downstream.
type Section struct {
	Label string
	Spans []string
}

// connectorPattern rewrites the conjunctions "and" and "with" into span
// separators: "bread and butter" is two mentions, not one.
var connectorPattern = regexp.MustCompile(`(?i)\b(?:and|with)\b`)

// Segmenter splits meal text on a closed set of meal labels.
type Segmenter struct {
	labelPattern *regexp.Regexp
}

// DefaultLabels returns the recognized meal labels.
func DefaultLabels() []string {
	return []string{
		"breakfast", "lunch", "dinner", "snack",
		"morning", "afternoon", "evening",
	}
}

// New creates a segmenter for the given label words. A nil list means
// DefaultLabels. Labels match case-insensitively when followed by ":".
func New(labels []string) *Segmenter {
	if labels == nil {
		labels = DefaultLabels()
	}
	quoted := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			quoted = append(quoted, regexp.QuoteMeta(l))
		}
	}
	if len(quoted) == 0 {
		// A pattern that can never match; all text lands in Unlabeled.
		return &Segmenter{labelPattern: regexp.MustCompile(`\A\z.`)}
	}
	pattern := fmt.Sprintf(`(?i)\b(%s)\s*:`, strings.Join(quoted, "|"))
	return &Segmenter{labelPattern: regexp.MustCompile(pattern)}
}

// Segment splits text into sections. Text before the first label goes to an
// implicit Unlabeled section; sections that end up with no spans are
// dropped. Section and span order follows input order.
func (s *Segmenter) Segment(text string) []Section {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sections []Section
	add := func(label, body string) {
		spans := splitSpans(body)
		if len(spans) == 0 {
			return
		}
		sections = append(sections, Section{Label: label, Spans: spans})
	}

	marks := s.labelPattern.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		add(Unlabeled, text)
		return sections
	}

	add(Unlabeled, text[:marks[0][0]])
	for i, m := range marks {
		label := titleCase(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		add(label, text[m[1]:end])
	}
	return sections
}

// splitSpans cuts a section body into trimmed, non-empty spans. Separators
// are newlines, commas, the rewritten connectors, and periods; a period
// between two digits is part of a decimal, not a separator.
func splitSpans(body string) []string {
	body = connectorPattern.ReplaceAllString(body, ",")

	var spans []string
	var current strings.Builder
	flush := func() {
		if span := strings.TrimSpace(current.String()); span != "" {
			spans = append(spans, span)
		}
		current.Reset()
	}

	runes := []rune(body)
	for i, r := range runes {
		sep := false
		switch r {
		case '\n', ',':
			sep = true
		case '.':
			prevDigit := i > 0 && unicode.IsDigit(runes[i-1])
			nextDigit := i+1 < len(runes) && unicode.IsDigit(runes[i+1])
			sep = !prevDigit || !nextDigit
		}
		if sep {
			flush()
		} else {
			current.WriteRune(r)
		}
	}
	flush()

	return spans
}

func titleCase(word string) string {
	word = strings.ToLower(word)
	for i, r := range word {
		return string(unicode.ToUpper(r)) + word[i+len(string(r)):]
	}
	return word
}
