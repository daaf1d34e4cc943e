package config

import (
	"fmt"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/lexicon"
)

// Loader aggregates file paths for all configurable components. Empty paths
// select the built-in defaults.
type Loader struct {
	StopwordsPath string
	SynonymsPath  string
	LabelsPath    string
	DatabasePath  string
}

// Components holds loaded configuration ready to wire into an analyzer.
type Components struct {
	Stopwords []string
	Labels    []string
	Lexicon   *lexicon.Table
	Source    foodb.Source
}

// Load loads all configured components. A nil field in the result means the
// built-in default should be used.
func (l *Loader) Load() (*Components, error) {
	c := &Components{}

	if l.StopwordsPath != "" {
		sw, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		c.Stopwords = sw.Terms
	}

	if l.SynonymsPath != "" {
		table, err := lexicon.LoadFromYAML(l.SynonymsPath)
		if err != nil {
			return nil, fmt.Errorf("load synonyms: %w", err)
		}
		c.Lexicon = table
	}

	if l.LabelsPath != "" {
		labels, err := LoadLabels(l.LabelsPath)
		if err != nil {
			return nil, fmt.Errorf("load labels: %w", err)
		}
		c.Labels = labels.Labels
	}

	if l.DatabasePath != "" {
		// Validate eagerly so a broken file fails at startup rather
		// than on the first swap.
		if _, err := LoadDatabase(l.DatabasePath); err != nil {
			return nil, fmt.Errorf("load database: %w", err)
		}
		c.Source = DatabaseSource{Path: l.DatabasePath}
	}

	return c, nil
}
