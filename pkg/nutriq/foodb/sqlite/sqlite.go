// Package sqlite stores food databases in SQLite files: a foods table in
// insertion order, an alias table, and a meta table carrying the dataset
// version. Write replaces the whole dataset in one transaction, so a file is
// always a complete revision.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/plateworks/nutriq/pkg/nutriq/foodb"
	"github.com/plateworks/nutriq/pkg/nutriq/internalerr"
)

const versionKey = "version"

// Source is a foodb.Source backed by a SQLite file.
type Source struct {
	Path string
}

// Load reads all entries in insertion order plus the dataset version.
func (s Source) Load(ctx context.Context) ([]foodb.Entry, string, error) {
	// sql.Open would create an empty file; a read must not.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, "", err
	}

	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, "", err
	}
	defer db.Close()

	var version string
	err = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key=?`, versionKey).Scan(&version)
	if err == sql.ErrNoRows {
		return nil, "", fmt.Errorf("%w: %s has no version", internalerr.ErrInvalidConfig, s.Path)
	}
	if err != nil {
		return nil, "", err
	}

	entries, err := loadEntries(ctx, db)
	if err != nil {
		return nil, "", err
	}
	return entries, version, nil
}

func loadEntries(ctx context.Context, db *sql.DB) ([]foodb.Entry, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, canonical_name, display_name, calories_per_100g, protein_g, carbs_g, fat_g, serving_size_g, serving_description
FROM foods
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		entries []foodb.Entry
		ids     []int64
	)
	for rows.Next() {
		var (
			id int64
			e  foodb.Entry
		)
		err := rows.Scan(
			&id, &e.CanonicalName, &e.DisplayName,
			&e.CaloriesPer100g, &e.ProteinPer100g, &e.CarbsPer100g, &e.FatPer100g,
			&e.ServingSizeG, &e.ServingDescription,
		)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	aliases, err := loadAliases(ctx, db)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		entries[i].Aliases = aliases[id]
	}
	return entries, nil
}

func loadAliases(ctx context.Context, db *sql.DB) (map[int64][]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT food_id, alias FROM food_aliases ORDER BY food_id, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aliases := make(map[int64][]string)
	for rows.Next() {
		var (
			foodID int64
			alias  string
		)
		if err := rows.Scan(&foodID, &alias); err != nil {
			return nil, err
		}
		aliases[foodID] = append(aliases[foodID], alias)
	}
	return aliases, rows.Err()
}

// Write creates or replaces the food database at path.
func Write(ctx context.Context, path string, entries []foodb.Entry, version string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		return err
	}
	if err := initSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_aliases`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return err
	}

	insertFood, err := tx.PrepareContext(ctx, `
INSERT INTO foods (canonical_name, display_name, calories_per_100g, protein_g, carbs_g, fat_g, serving_size_g, serving_description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id;
`)
	if err != nil {
		return err
	}
	defer insertFood.Close()

	insertAlias, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO food_aliases (food_id, alias) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer insertAlias.Close()

	for _, e := range entries {
		var id int64
		err := insertFood.QueryRowContext(ctx,
			e.CanonicalName, e.DisplayName,
			e.CaloriesPer100g, e.ProteinPer100g, e.CarbsPer100g, e.FatPer100g,
			e.ServingSizeG, e.ServingDescription,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert %q: %w", e.CanonicalName, err)
		}

		for _, alias := range e.Aliases {
			if alias == "" {
				continue
			}
			if _, err := insertAlias.ExecContext(ctx, id, alias); err != nil {
				return fmt.Errorf("insert alias %q: %w", alias, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`, versionKey, version); err != nil {
		return err
	}

	return tx.Commit()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS foods (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	canonical_name TEXT UNIQUE NOT NULL,
	display_name TEXT NOT NULL,
	calories_per_100g REAL NOT NULL,
	protein_g REAL NOT NULL,
	carbs_g REAL NOT NULL,
	fat_g REAL NOT NULL,
	serving_size_g REAL NOT NULL,
	serving_description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS food_aliases (
	food_id INTEGER NOT NULL,
	alias TEXT NOT NULL,
	UNIQUE(food_id, alias),
	FOREIGN KEY(food_id) REFERENCES foods(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}
