package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the table LoadSQLite reads when none is given.
const DefaultTable = "records"

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads records from table in the SQLite database at path.
//
// The connection is opened read-only and configured with:
//   - query_only so no statement can write
//   - 5-second busy timeout for lock contention
//
// Rows are read in rowid order, which is insertion order. NULL columns
// load as empty strings.
func LoadSQLite(ctx context.Context, path, table string) (*Store, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNameRe.MatchString(table) {
		return nil, &LoadError{Code: ErrCodeTable, Source: path, Message: fmt.Sprintf("invalid table name %q", table)}
	}

	db, err := openReadOnly(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeOpen, Source: path, Message: "cannot open database", Err: err}
	}
	defer db.Close()

	records, err := readRecords(ctx, db, table)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeQuery, Source: path, Message: fmt.Sprintf("cannot read table %q", table), Err: err}
	}
	return Load(records), nil
}

// readOnlyDSN returns a file: URI for path with mode=ro. The path is made
// absolute and percent-escaped so '?', '#' and '%' in file names survive.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

// openReadOnly opens path with mode=ro so a missing file is an error
// rather than a freshly created database.
func openReadOnly(path string) (*sql.DB, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	return db, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func readRecords(ctx context.Context, db *sql.DB, table string) ([]Record, error) {
	// table is checked against tableNameRe before it reaches here.
	query := fmt.Sprintf(`
		SELECT COALESCE(name, ''), COALESCE(organism, ''), COALESCE(formula, '')
		FROM %q
		ORDER BY rowid ASC
	`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.Organism, &rec.Formula); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
