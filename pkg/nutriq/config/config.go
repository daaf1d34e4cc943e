// Package config loads analyzer vocabulary and food databases from YAML
// files and assembles them into ready-to-wire components.
package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/internalerr"
)

// Stopwords is the stopword list configuration.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads stopwords from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}

	return &sw, nil
}

// Labels is the meal label configuration.
type Labels struct {
	Labels []string `yaml:"labels"`
}

// LoadLabels loads meal labels from a YAML file.
func LoadLabels(path string) (*Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Labels
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}

	return &l, nil
}

// Database is a YAML food database.
//
// Expected format:
//
//	version: garden-2024
//	foods:
//	  - display_name: Toast
//	    canonical_name: toast
//	    aliases: []
//	    calories_per_100g: 280
//	    protein_g: 9
//	    carbs_g: 49
//	    fat_g: 4
//	    serving_size_g: 28
//	    serving_description: 1 slice (28 g)
type Database struct {
	Version string      `yaml:"version"`
	Foods   []FoodEntry `yaml:"foods"`
}

// FoodEntry is one food record in a YAML database.
type FoodEntry struct {
	DisplayName        string   `yaml:"display_name"`
	CanonicalName      string   `yaml:"canonical_name"`
	Aliases            []string `yaml:"aliases"`
	CaloriesPer100g    float64  `yaml:"calories_per_100g"`
	ProteinG           float64  `yaml:"protein_g"`
	CarbsG             float64  `yaml:"carbs_g"`
	FatG               float64  `yaml:"fat_g"`
	ServingSizeG       float64  `yaml:"serving_size_g"`
	ServingDescription string   `yaml:"serving_description"`
}

// LoadDatabase loads a food database from a YAML file. The version is
// mandatory; without it reports could not name the dataset they were
// computed from. Structural validation of the entries happens when the
// database is built, not here.
func LoadDatabase(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var db Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, err
	}
	if db.Version == "" {
		return nil, fmt.Errorf("%w: %s is missing a version", internalerr.ErrInvalidConfig, path)
	}

	return &db, nil
}

// Entries converts the YAML records into database entries.
func (d *Database) Entries() []foodb.Entry {
	entries := make([]foodb.Entry, len(d.Foods))
	for i, f := range d.Foods {
		entries[i] = foodb.Entry{
			DisplayName:        f.DisplayName,
			CanonicalName:      f.CanonicalName,
			Aliases:            append([]string(nil), f.Aliases...),
			CaloriesPer100g:    f.CaloriesPer100g,
			ProteinPer100g:     f.ProteinG,
			CarbsPer100g:       f.CarbsG,
			FatPer100g:         f.FatG,
			ServingSizeG:       f.ServingSizeG,
			ServingDescription: f.ServingDescription,
		}
	}
	return entries
}

// DatabaseSource is a foodb.Source backed by a YAML file. The file is read
// on every Load, so swapping in an updated file is just another Load.
type DatabaseSource struct {
	Path string
}

// Load reads and converts the YAML database.
func (s DatabaseSource) Load(_ context.Context) ([]foodb.Entry, string, error) {
	db, err := LoadDatabase(s.Path)
	if err != nil {
		return nil, "", err
	}
	return db.Entries(), db.Version, nil
}
