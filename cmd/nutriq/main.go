package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/plateworks/nutriq/pkg/nutriq"
	"github.com/plateworks/nutriq/pkg/nutriq/config"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/csvdb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/sqlite"
	"github.com/plateworks/nutriq/pkg/nutriq/match"
	"github.com/plateworks/nutriq/pkg/nutriq/report"
)

func main() {
	var (
		text       = flag.String("text", "", "Meal description to analyze (one-shot mode)")
		file       = flag.String("file", "", "Read the meal description from a file")
		jsonOut    = flag.Bool("json", false, "Print the report as JSON")
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

	meal := *text
	if meal == "" && flag.NArg() > 0 {
		meal = strings.Join(flag.Args(), " ")
	}

	switch {
	case meal != "":
		emit(analyzer.Analyze(meal), *jsonOut)
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read meal file: %v", err)
		}
		emit(analyzer.Analyze(string(data)), *jsonOut)
	default:
		interactive(analyzer, *jsonOut)
	}
}

// pickSource maps the database flags onto a loader. No flag means the
// built-in database.
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

func interactive(analyzer *nutriq.Analyzer, asJSON bool) {
	fmt.Println("===========================================")
	fmt.Println("  NutrIQ Meal Analyzer")
	fmt.Println("  Free-text meals, nutrient totals")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Describe a meal (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		meal := strings.TrimSpace(scanner.Text())
		if meal == "" {
			continue
		}
		emit(analyzer.Analyze(meal), asJSON)
	}

	fmt.Println("\nGoodbye!")
}

func emit(rep report.Report, asJSON bool) {
	if asJSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	printReport(rep)
}

func printReport(rep report.Report) {
	if len(rep.Items) == 0 {
		fmt.Println("No foods found.")
		fmt.Println()
		return
	}

	section := ""
	for _, item := range rep.Items {
		if item.Section != section {
			section = item.Section
			fmt.Printf("\n%s\n", section)
		}

		if item.Tier == match.TierNone {
			fmt.Printf("  %-22s  (no match)\n", item.Span)
			continue
		}

		n := item.Nutrients.Rounded()
		line := fmt.Sprintf("  %-22s  %6.1f g  %7.1f kcal  %5.1fg P  %5.1fg C  %5.1fg F",
			item.Food, item.Grams, n.Calories, n.ProteinG, n.CarbsG, n.FatG)
		if item.Tier == match.TierFuzzy {
			line += fmt.Sprintf("  (~%s, %.2f)", item.Matched, item.Score)
		}
		fmt.Println(line)
	}

	t := rep.Totals.Rounded()
	fmt.Println()
	fmt.Printf("Total: %.1f kcal, %.1f g protein, %.1f g carbs, %.1f g fat\n",
		t.Calories, t.ProteinG, t.CarbsG, t.FatG)
	if len(rep.Unmatched) > 0 {
		fmt.Printf("Unmatched: %s\n", strings.Join(rep.Unmatched, ", "))
	}
	fmt.Printf("Database: %s\n", rep.DatabaseVersion)
	fmt.Println()
}
