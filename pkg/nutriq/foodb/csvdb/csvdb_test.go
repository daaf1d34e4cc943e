package csvdb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/internalerr"
)

func TestWriteThenLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "foods.csv")

	in := []foodb.Entry{
		{
			DisplayName: "Dal", CanonicalName: "dal",
			Aliases:         []string{"daal", "dhal"},
			CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4,
			ServingSizeG: 198, ServingDescription: "1 cup cooked (198 g)",
		},
		{
			DisplayName: "Toast", CanonicalName: "toast",
			CaloriesPer100g: 280, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 4,
			ServingSizeG: 28, ServingDescription: "1 slice (28 g)",
		},
	}

	if err := Write(path, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, version, err := Source{Path: path, Version: "usda-2024"}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if version != "usda-2024" {
		t.Errorf("version = %q, want %q", version, "usda-2024")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestVersionDefaultsToFileName(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nutrition_db_clean.csv")

	if err := Write(path, []foodb.Entry{{DisplayName: "Rice", CanonicalName: "rice", ServingSizeG: 150}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	_, version, err := Source{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if version != "nutrition_db_clean" {
		t.Errorf("version = %q, want %q", version, "nutrition_db_clean")
	}
}

func TestLoadBareTable(t *testing.T) {
	// The minimal format: per-100g values only, no serving or alias columns.
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bare.csv")

	content := "display_name,calories_per_100g,protein_g,carbs_g,fat_g\n" +
		"Banana,89,1.1,23,0.3\n" +
		"Olive Oil,884,0,0,100\n"
	os.WriteFile(path, []byte(content), 0644)

	entries, _, err := Source{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	banana := entries[0]
	if banana.CanonicalName != "banana" {
		t.Errorf("canonical = %q, want lowercased display name", banana.CanonicalName)
	}
	if banana.ServingSizeG != 100 {
		t.Errorf("serving = %v, want 100 g default", banana.ServingSizeG)
	}
	if banana.Aliases != nil {
		t.Errorf("aliases = %v, want none", banana.Aliases)
	}
	if err := banana.Validate(); err != nil {
		t.Errorf("bare entry should validate: %v", err)
	}
}

func TestLoadColumnOrderIrrelevant(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "shuffled.csv")

	content := "fat_g,display_name,carbs_g,protein_g,calories_per_100g,serving_size_g\n" +
		"0.3,White Rice,28,2.7,130,150\n"
	os.WriteFile(path, []byte(content), 0644)

	entries, _, err := Source{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := entries[0]
	if got.CaloriesPer100g != 130 || got.FatPer100g != 0.3 || got.ServingSizeG != 150 {
		t.Errorf("columns resolved wrong: %+v", got)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.csv")

	content := "display_name,protein_g,carbs_g,fat_g\nToast,9,49,4\n"
	os.WriteFile(path, []byte(content), 0644)

	_, _, err := Source{Path: path}.Load(context.Background())
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("missing column should yield ErrInvalidConfig, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "calories_per_100g") {
		t.Errorf("error should name the missing column, got %v", err)
	}
}

func TestLoadBadNumber(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.csv")

	content := "display_name,calories_per_100g,protein_g,carbs_g,fat_g\n" +
		"Toast,280,9,49,4\n" +
		"Rice,many,2.7,28,0.3\n"
	os.WriteFile(path, []byte(content), 0644)

	_, _, err := Source{Path: path}.Load(context.Background())
	if err == nil {
		t.Fatal("bad number should fail")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should carry the line number, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Source{Path: "/nonexistent/foods.csv"}.Load(context.Background())
	if err == nil {
		t.Error("missing file should fail")
	}
}

func TestAliasesSurviveCommasInDescriptions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "quoted.csv")

	in := []foodb.Entry{{
		DisplayName: "Greek Yogurt", CanonicalName: "greek yogurt",
		Aliases:         []string{"yogurt", "curd"},
		CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4,
		ServingSizeG: 170, ServingDescription: "1 container, plain (170 g)",
	}}
	if err := Write(path, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, _, err := Source{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out[0].ServingDescription != "1 container, plain (170 g)" {
		t.Errorf("description = %q, comma was not preserved", out[0].ServingDescription)
	}
	if !reflect.DeepEqual(out[0].Aliases, []string{"yogurt", "curd"}) {
		t.Errorf("aliases = %v", out[0].Aliases)
	}
}

func TestSourceFeedsBuild(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "foods.csv")

	if err := Write(path, foodb.BuiltinEntries()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	db, err := foodb.Open(context.Background(), Source{Path: path, Version: "export-1"}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if db.Len() != len(foodb.BuiltinEntries()) {
		t.Errorf("Len = %d, want %d", db.Len(), len(foodb.BuiltinEntries()))
	}
	if _, ok := db.LookupAlias("daal"); !ok {
		t.Error("alias daal should survive the round trip")
	}
}
