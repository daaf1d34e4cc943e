package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/plateworks/nutriq/internal/mealio"
	"github.com/plateworks/nutriq/pkg/nutriq"
	"github.com/plateworks/nutriq/pkg/nutriq/config"
	"github.com/plateworks/nutriq/pkg/nutriq/eval"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/csvdb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/sqlite"
)

func main() {
	var (
		goldPath   = flag.String("gold", "", "Gold cases JSONL (default: built-in set)")
		probesPath = flag.String("probes", "", "Misspelling probes JSONL (default: built-in set)")
		dbPath     = flag.String("db", "", "YAML food database (default: built-in)")
		csvPath    = flag.String("csv", "", "CSV food database")
		sqlitePath = flag.String("sqlite", "", "SQLite food database")
		stopwords  = flag.String("stopwords", "", "Stopwords file (optional)")
		synonyms   = flag.String("synonyms", "", "Synonyms file (optional)")
		labels     = flag.String("labels", "", "Meal labels file (optional)")
		threshold  = flag.Float64("threshold", 0, "Fuzzy match acceptance threshold (0 = default)")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{
		StopwordsPath: *stopwords,
		SynonymsPath:  *synonyms,
		LabelsPath:    *labels,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	source, err := pickSource(*dbPath, *csvPath, *sqlitePath)
	if err != nil {
		log.Fatal(err)
	}

	analyzer, err := nutriq.New(ctx, nutriq.Options{
		Source:     source,
		Stopwords:  components.Stopwords,
		Lexicon:    components.Lexicon,
		MealLabels: components.Labels,
		Threshold:  *threshold,
	})
	if err != nil {
		log.Fatalf("build analyzer: %v", err)
	}

	cases := eval.BuiltinGold()
	if *goldPath != "" {
		cases, err = mealio.LoadCases(*goldPath)
		if err != nil {
			log.Fatalf("load gold cases: %v", err)
		}
	}

	probes := eval.BuiltinMisspellings()
	if *probesPath != "" {
		probes, err = mealio.LoadProbes(*probesPath)
		if err != nil {
			log.Fatalf("load probes: %v", err)
		}
	}

	summary := eval.RunSets(analyzer, cases, probes, eval.BuiltinUnseen())

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("marshal summary: %v", err)
	}
	fmt.Println(string(out))
}

func pickSource(yamlPath, csvPath, sqlitePath string) (foodb.Source, error) {
	var sources []foodb.Source
	if yamlPath != "" {
		sources = append(sources, config.DatabaseSource{Path: yamlPath})
	}
	if csvPath != "" {
		sources = append(sources, csvdb.Source{Path: csvPath})
	}
	if sqlitePath != "" {
		sources = append(sources, sqlite.Source{Path: sqlitePath})
	}

	switch len(sources) {
	case 0:
		return nil, nil
	case 1:
		return sources[0], nil
	default:
		return nil, fmt.Errorf("choose one of --db, --csv, --sqlite")
	}
}
