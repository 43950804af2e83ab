package output

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"

	"villagejoin/internal/dataset"
)

var schema = []string{
	`DROP TABLE IF EXISTS "localities"`,
	`CREATE TABLE "localities" (
		"key" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"attributes" TEXT NOT NULL,
		"households" REAL,
		"total_income" REAL,
		"mean" REAL,
		"median" REAL,
		"q1" REAL,
		"q3" REAL,
		"std" REAL,
		"cv" REAL,
		"total_population" REAL,
		"higher_education" REAL,
		"rate" REAL
	)`,
	`DROP TABLE IF EXISTS "absent_keys"`,
	`CREATE TABLE "absent_keys" ("key" TEXT PRIMARY KEY)`,
}

const insertLocality = `INSERT INTO "localities" (
	"key", "name", "attributes",
	"households", "total_income", "mean", "median", "q1", "q3", "std", "cv",
	"total_population", "higher_education", "rate"
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite replaces the database at path with the merged records and
// the absent keys.
func WriteSQLite(path string, merged *dataset.Boundaries, absent []string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing old database %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := insertAll(tx, merged, absent); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", path, err)
	}

	return nil
}

func insertAll(tx *sql.Tx, merged *dataset.Boundaries, absent []string) error {
	stmt, err := tx.Prepare(insertLocality)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var insertErr error

	merged.Each(func(key string, rec *dataset.Attributes) bool {
		args, err := localityRow(key, rec)
		if err != nil {
			insertErr = err

			return false
		}

		if _, err := stmt.Exec(args...); err != nil {
			insertErr = fmt.Errorf("inserting %s: %w", key, err)

			return false
		}

		return true
	})

	if insertErr != nil {
		return insertErr
	}

	for _, k := range absent {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO "absent_keys" ("key") VALUES (?)`, k); err != nil {
			return fmt.Errorf("inserting absent key %s: %w", k, err)
		}
	}

	return nil
}

func localityRow(key string, rec *dataset.Attributes) ([]any, error) {
	attrs, err := rec.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}

	name := key
	if v, ok := rec.Get(dataset.NameField); ok {
		if s, ok := v.(string); ok {
			name = s
		}
	}

	args := []any{key, name, string(attrs)}

	if inc, ok := field[dataset.Income](rec, dataset.IncomeField); ok {
		args = append(args, inc.Households, inc.TotalIncome, inc.Mean, inc.Median, inc.Q1, inc.Q3, inc.Std, inc.CV)
	} else {
		args = append(args, nil, nil, nil, nil, nil, nil, nil, nil)
	}

	if edu, ok := field[dataset.Education](rec, dataset.EducationField); ok {
		var rate any
		if edu.Rate != nil {
			rate = *edu.Rate
		}

		args = append(args, edu.TotalPopulation, edu.HigherEducation, rate)
	} else {
		args = append(args, nil, nil, nil)
	}

	return args, nil
}

// field returns rec[name] when it holds a T.
func field[T any](rec *dataset.Attributes, name string) (T, bool) {
	var zero T

	v, ok := rec.Get(name)
	if !ok {
		return zero, false
	}

	t, ok := v.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
