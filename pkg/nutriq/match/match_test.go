package match

import (
	"testing"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
)

func buildDB(t *testing.T) *foodb.DB {
	t.Helper()
	entries := []foodb.Entry{
		{CanonicalName: "toast", ServingSizeG: 28},
		{CanonicalName: "chicken breast", Aliases: []string{"chicken"}, ServingSizeG: 120},
		{CanonicalName: "greek yogurt", Aliases: []string{"yogurt", "curd"}, ServingSizeG: 170},
		{CanonicalName: "whole wheat bread", Aliases: []string{"wheat bread"}, ServingSizeG: 28},
		{CanonicalName: "rice", ServingSizeG: 150},
		{CanonicalName: "brown rice", ServingSizeG: 150},
		{CanonicalName: "pear", ServingSizeG: 178},
		{CanonicalName: "peas", ServingSizeG: 80},
	}
	db, err := foodb.Build(entries, "test", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return db
}

func TestMatchExact(t *testing.T) {
	m := New(buildDB(t), 0)

	tests := []struct {
		term      string
		wantEntry int
	}{
		{"toast", 0},
		{"chicken breast", 1},
		{"brown rice", 5},
		{"rice", 4},
	}

	for _, tt := range tests {
		got := m.Match(tt.term)
		if got.Tier != TierExact {
			t.Errorf("Match(%q).Tier = %s, want exact", tt.term, got.Tier)
		}
		if got.Entry != tt.wantEntry {
			t.Errorf("Match(%q).Entry = %d, want %d", tt.term, got.Entry, tt.wantEntry)
		}
		if got.Score != 1 {
			t.Errorf("Match(%q).Score = %v, want 1", tt.term, got.Score)
		}
		if got.Matched != tt.term {
			t.Errorf("Match(%q).Matched = %q, want the term itself", tt.term, got.Matched)
		}
	}
}

func TestMatchAlias(t *testing.T) {
	m := New(buildDB(t), 0)

	tests := []struct {
		term      string
		wantEntry int
	}{
		{"chicken", 1},
		{"yogurt", 2},
		{"curd", 2},
		{"wheat bread", 3},
	}

	for _, tt := range tests {
		got := m.Match(tt.term)
		if got.Tier != TierAlias {
			t.Errorf("Match(%q).Tier = %s, want alias", tt.term, got.Tier)
		}
		if got.Entry != tt.wantEntry {
			t.Errorf("Match(%q).Entry = %d, want %d", tt.term, got.Entry, tt.wantEntry)
		}
	}
}

func TestMatchFuzzyMisspelling(t *testing.T) {
	m := New(buildDB(t), 0)

	tests := []struct {
		term        string
		wantEntry   int
		wantMatched string
	}{
		{"chiken", 1, "chicken"},
		{"chiken breast", 1, "chicken breast"},
		{"tost", 0, "toast"},
		{"yohurt", 2, "yogurt"},
	}

	for _, tt := range tests {
		got := m.Match(tt.term)
		if got.Tier != TierFuzzy {
			t.Errorf("Match(%q).Tier = %s, want fuzzy", tt.term, got.Tier)
			continue
		}
		if got.Entry != tt.wantEntry {
			t.Errorf("Match(%q).Entry = %d, want %d", tt.term, got.Entry, tt.wantEntry)
		}
		if got.Matched != tt.wantMatched {
			t.Errorf("Match(%q).Matched = %q, want %q", tt.term, got.Matched, tt.wantMatched)
		}
		if got.Score < DefaultThreshold || got.Score >= 1 {
			t.Errorf("Match(%q).Score = %v, want in [%v, 1)", tt.term, got.Score, DefaultThreshold)
		}
	}
}

func TestMatchFuzzyWordOrder(t *testing.T) {
	m := New(buildDB(t), 0)

	got := m.Match("breast chicken")
	if got.Tier != TierFuzzy || got.Entry != 1 {
		t.Fatalf("Match('breast chicken') = %+v, want fuzzy hit on chicken breast", got)
	}
	if got.Score != 1 {
		t.Errorf("token-reordered term should score 1.0, got %v", got.Score)
	}
}

func TestMatchSingleEditAlwaysClears(t *testing.T) {
	m := New(buildDB(t), 0)

	// One substitution in any canonical term keeps the match.
	tests := []struct {
		term      string
		wantEntry int
	}{
		{"toust", 0},
		{"chicken bruast", 1},
		{"greek yogurk", 2},
		{"brown rica", 5},
	}

	for _, tt := range tests {
		got := m.Match(tt.term)
		if got.Tier != TierFuzzy || got.Entry != tt.wantEntry {
			t.Errorf("Match(%q) = %+v, want fuzzy hit on entry %d", tt.term, got, tt.wantEntry)
		}
	}
}

func TestMatchNone(t *testing.T) {
	m := New(buildDB(t), 0)

	for _, term := range []string{"xylophone sandwich", "zzz", ""} {
		got := m.Match(term)
		if got.Tier != TierNone {
			t.Errorf("Match(%q).Tier = %s, want none", term, got.Tier)
		}
		if got.Entry != -1 {
			t.Errorf("Match(%q).Entry = %d, want -1", term, got.Entry)
		}
		if got.Score != 0 {
			t.Errorf("Match(%q).Score = %v, want 0", term, got.Score)
		}
	}
}

func TestMatchTieBreaksOnInsertionOrder(t *testing.T) {
	m := New(buildDB(t), 0)

	// "peat" is one substitution from both "pear" and "peas"; the earlier
	// entry wins.
	got := m.Match("peat")
	if got.Tier != TierFuzzy || got.Entry != 6 {
		t.Fatalf("Match('peat') = %+v, want fuzzy hit on pear (entry 6)", got)
	}
}

func TestMatchCustomThreshold(t *testing.T) {
	strict := New(buildDB(t), 0.95)
	if got := strict.Match("chiken"); got.Tier != TierNone {
		t.Errorf("threshold 0.95 should reject 'chiken', got %+v", got)
	}

	def := New(buildDB(t), 0)
	if def.Threshold() != DefaultThreshold {
		t.Errorf("zero threshold should fall back to default, got %v", def.Threshold())
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := New(buildDB(t), 0)

	first := m.Match("chiken breast")
	for i := 0; i < 20; i++ {
		if got := m.Match("chiken breast"); got != first {
			t.Fatalf("Match is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"", "", 5, 0},
		{"abc", "abc", 5, 0},
		{"", "abc", 5, 3},
		{"kitten", "sitting", 10, 3},
		{"chiken", "chicken", 5, 1},
		{"toast", "tost", 5, 1},
		// cut off: anything beyond max reports max+1
		{"aaaa", "bbbb", 2, 3},
		{"short", "a much longer string", 3, 4},
	}

	for _, tt := range tests {
		got := levenshtein([]rune(tt.a), []rune(tt.b), tt.max)
		if got != tt.want {
			t.Errorf("levenshtein(%q, %q, %d) = %d, want %d", tt.a, tt.b, tt.max, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		a, b []string
		want float64
	}{
		{[]string{"chicken", "breast"}, []string{"breast", "chicken"}, 1.0},
		{[]string{"chicken"}, []string{"chicken", "breast"}, 0.5},
		{[]string{"toast"}, []string{"rice"}, 0.0},
		{nil, nil, 1.0},
		{[]string{"toast"}, nil, 0.0},
	}

	for _, tt := range tests {
		if got := jaccard(tt.a, tt.b); got != tt.want {
			t.Errorf("jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
