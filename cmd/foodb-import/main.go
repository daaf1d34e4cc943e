// Command foodb-import builds food database files from external data: Open
// Food Facts JSONL dumps and HTML pages carrying a nutrition table. Output
// goes to CSV or SQLite, ready for the -csv / -sqlite flags of cmd/nutriq.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/csvdb"
	"github.com/plateworks/nutriq/pkg/nutriq/foodb/sqlite"
)

func main() {
	var (
		offPath   = flag.String("off", "", "Open Food Facts JSONL dump to import")
		htmlPath  = flag.String("html", "", "HTML page with a nutrition table (file path or URL)")
		csvOut    = flag.String("csv", "", "Write the imported entries to a CSV database")
		sqliteOut = flag.String("sqlite", "", "Write the imported entries to a SQLite database")
		version   = flag.String("version", "", "Database version label (default: import-<date>)")
		limit     = flag.Int("limit", 0, "Maximum entries to import per source (0 = unlimited)")
	)
	flag.Parse()

	if *offPath == "" && *htmlPath == "" {
		log.Fatal("--off or --html required")
	}
	if *csvOut == "" && *sqliteOut == "" {
		log.Fatal("--csv or --sqlite required")
	}
	if *version == "" {
		*version = "import-" + time.Now().Format("2006-01-02")
	}

	var entries []foodb.Entry
	if *offPath != "" {
		imported, err := importOFF(*offPath, *limit)
		if err != nil {
			log.Fatalf("import open food facts: %v", err)
		}
		log.Printf("Imported %d entries from %s", len(imported), *offPath)
		entries = append(entries, imported...)
	}
	if *htmlPath != "" {
		imported, err := importHTML(*htmlPath, *limit)
		if err != nil {
			log.Fatalf("import nutrition table: %v", err)
		}
		log.Printf("Imported %d entries from %s", len(imported), *htmlPath)
		entries = append(entries, imported...)
	}

	entries = dedupe(entries)
	if len(entries) == 0 {
		log.Fatal("no importable entries found")
	}

	if *csvOut != "" {
		if err := csvdb.Write(*csvOut, entries); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		log.Printf("✓ Wrote %d entries to %s", len(entries), *csvOut)
	}
	if *sqliteOut != "" {
		ctx := context.Background()
		if err := sqlite.Write(ctx, *sqliteOut, entries, *version); err != nil {
			log.Fatalf("write sqlite: %v", err)
		}
		log.Printf("✓ Wrote %d entries to %s (version %s)", len(entries), *sqliteOut, *version)
	}
}

// offProduct is the slice of an Open Food Facts record the importer reads.
// Nutriment values arrive as either numbers or strings depending on the
// dump, so they stay untyped until floatValue coerces them.
type offProduct struct {
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	ProductNameEn   string         `json:"product_name_en"`
	GenericName     string         `json:"generic_name"`
	ServingSize     string         `json:"serving_size"`
	ServingQuantity any            `json:"serving_quantity"`
	Nutriments      map[string]any `json:"nutriments"`
}

// name returns the best available product name.
func (p *offProduct) name() string {
	for _, s := range []string{p.ProductNameEn, p.ProductName, p.GenericName} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// entry converts the product to a database entry. Products without a name or
// a usable calorie reading are rejected; missing macros default to zero.
func (p *offProduct) entry() (foodb.Entry, bool) {
	name := p.name()
	if name == "" {
		return foodb.Entry{}, false
	}
	kcal, ok := p.kcal100g()
	if !ok {
		return foodb.Entry{}, false
	}

	e := foodb.Entry{
		DisplayName:     name,
		CanonicalName:   strings.ToLower(name),
		CaloriesPer100g: kcal,
		ServingSizeG:    100,
	}
	e.ProteinPer100g, _ = p.nutriment("proteins_100g", 100)
	e.CarbsPer100g, _ = p.nutriment("carbohydrates_100g", 100)
	e.FatPer100g, _ = p.nutriment("fat_100g", 100)

	if v, ok := floatValue(p.ServingQuantity); ok && v > 0 {
		e.ServingSizeG = v
		e.ServingDescription = strings.TrimSpace(p.ServingSize)
		if e.ServingDescription == "" {
			e.ServingDescription = fmt.Sprintf("1 serving (%g g)", v)
		}
	}
	return e, true
}

// kcal100g returns calories per 100 g, converting from kilojoules when the
// dump only carries energy-kj_100g.
func (p *offProduct) kcal100g() (float64, bool) {
	if v, ok := p.nutriment("energy-kcal_100g", 10000); ok {
		return v, true
	}
	if v, ok := p.nutriment("energy-kj_100g", 42000); ok {
		return v / 4.184, true
	}
	return 0, false
}

// nutriment reads one nutriment, rejecting values outside [0, max].
func (p *offProduct) nutriment(key string, max float64) (float64, bool) {
	v, ok := floatValue(p.Nutriments[key])
	if !ok || v < 0 || v > max {
		return 0, false
	}
	return v, true
}

func floatValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(x), "%f", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// importOFF streams an Open Food Facts JSONL dump. Malformed lines and
// unusable products are skipped; dumps are dirty and a partial import is
// still an import.
func importOFF(path string, limit int) ([]foodb.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// OFF records routinely exceed the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var entries []foodb.Entry
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p offProduct
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			skipped++
			continue
		}
		entry, ok := p.entry()
		if !ok {
			skipped++
			continue
		}

		entries = append(entries, entry)
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if skipped > 0 {
		log.Printf("Skipped %d unusable records in %s", skipped, path)
	}
	return entries, nil
}

// importHTML parses nutrition tables out of an HTML page. The page may be a
// local file or an http(s) URL.
func importHTML(path string, limit int) ([]foodb.Entry, error) {
	var r io.Reader
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: HTTP %d", path, resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []foodb.Entry
	for _, table := range findTables(doc) {
		entries = append(entries, tableEntries(tableRows(table))...)
		if limit > 0 && len(entries) >= limit {
			entries = entries[:limit]
			break
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no nutrition table found in %s", path)
	}
	return entries, nil
}

func findTables(doc *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tables
}

func tableRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, rowCells(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cells = append(cells, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return cells
}

// nodeText extracts the text content of a node with whitespace collapsed.
func nodeText(n *html.Node) string {
	var text strings.Builder
	var extract func(n *html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// tableEntries interprets a parsed table as a nutrition table. The header
// row names the columns; a table without a recognizable name and calories
// column yields nothing. Nutrient cells may carry units ("165 kcal"), only
// the leading number is read.
func tableEntries(rows [][]string) []foodb.Entry {
	if len(rows) < 2 {
		return nil
	}

	col := headerColumns(rows[0])
	if _, ok := col["name"]; !ok {
		return nil
	}
	if _, ok := col["calories"]; !ok {
		return nil
	}

	var entries []foodb.Entry
	for _, cells := range rows[1:] {
		var name string
		if i := col["name"]; i < len(cells) {
			name = strings.TrimSpace(cells[i])
		}
		if name == "" {
			continue
		}
		kcal, ok := cellFloat(cells, col, "calories")
		if !ok {
			continue
		}

		e := foodb.Entry{
			DisplayName:     name,
			CanonicalName:   strings.ToLower(name),
			CaloriesPer100g: kcal,
			ServingSizeG:    100,
		}
		e.ProteinPer100g, _ = cellFloat(cells, col, "protein")
		e.CarbsPer100g, _ = cellFloat(cells, col, "carbs")
		e.FatPer100g, _ = cellFloat(cells, col, "fat")
		if v, ok := cellFloat(cells, col, "serving"); ok && v > 0 {
			e.ServingSizeG = v
		}
		entries = append(entries, e)
	}
	return entries
}

// headerColumns maps recognized header cells to their column index. The
// first matching cell wins.
func headerColumns(header []string) map[string]int {
	col := make(map[string]int)
	for i, cell := range header {
		c := strings.ToLower(cell)
		switch {
		case strings.Contains(c, "food") || strings.Contains(c, "name") || strings.Contains(c, "item"):
			setOnce(col, "name", i)
		case strings.Contains(c, "calor") || strings.Contains(c, "energy") || strings.Contains(c, "kcal"):
			setOnce(col, "calories", i)
		case strings.Contains(c, "protein"):
			setOnce(col, "protein", i)
		case strings.Contains(c, "carb"):
			setOnce(col, "carbs", i)
		case strings.Contains(c, "fat"):
			setOnce(col, "fat", i)
		case strings.Contains(c, "serving"):
			setOnce(col, "serving", i)
		}
	}
	return col
}

func setOnce(col map[string]int, key string, i int) {
	if _, ok := col[key]; !ok {
		col[key] = i
	}
}

func cellFloat(cells []string, col map[string]int, key string) (float64, bool) {
	i, ok := col[key]
	if !ok || i >= len(cells) {
		return 0, false
	}
	return floatValue(cells[i])
}

// dedupe keeps the first entry per canonical name so a rebuilt database
// still satisfies the unique-name constraint.
func dedupe(entries []foodb.Entry) []foodb.Entry {
	seen := make(map[string]struct{}, len(entries))
	var out []foodb.Entry
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.CanonicalName))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
