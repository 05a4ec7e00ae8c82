package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDatabase writes records into table of a fresh database file.
func createTestDatabase(t *testing.T, table string, records []Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE ` + table + ` (name TEXT, organism TEXT, formula TEXT)`)
	require.NoError(t, err)
	for _, rec := range records {
		_, err = db.Exec(`INSERT INTO `+table+` (name, organism, formula) VALUES (?, ?, ?)`,
			rec.Name, rec.Organism, rec.Formula)
		require.NoError(t, err)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := createTestDatabase(t, DefaultTable, sampleRecords())

	s, err := LoadSQLite(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), s.Records())

	rec, ok := s.FindByName("P1")
	require.True(t, ok)
	assert.Equal(t, "Human", rec.Organism)
}

func TestLoadSQLite_CustomTableAndNulls(t *testing.T) {
	path := createTestDatabase(t, "proteins", nil)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO proteins (name, organism, formula) VALUES ('X', NULL, '3A')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := LoadSQLite(context.Background(), path, "proteins")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Record{Name: "X", Organism: "", Formula: "3A"}, s.Records()[0])
}

func TestLoadSQLite_Errors(t *testing.T) {
	path := createTestDatabase(t, DefaultTable, sampleRecords())

	tests := []struct {
		name  string
		path  string
		table string
		code  string
	}{
		{"invalid table name", path, "records; DROP TABLE records", ErrCodeTable},
		{"unknown table", path, "missing", ErrCodeQuery},
		{"missing file", filepath.Join(t.TempDir(), "absent.db"), "", ErrCodeOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSQLite(context.Background(), tt.path, tt.table)
			require.Error(t, err)
			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tt.code, le.Code)
		})
	}
}

func TestLoadSQLite_SpecialCharactersInPath(t *testing.T) {
	for _, name := range []string{"data?v=1.db", "run#2.db", "100%.db", "with space.db"} {
		t.Run(name, func(t *testing.T) {
			src := createTestDatabase(t, DefaultTable, sampleRecords())
			path := filepath.Join(filepath.Dir(src), name)
			require.NoError(t, os.Rename(src, path))

			s, err := LoadSQLite(context.Background(), path, "")
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), s.Records())
		})
	}
}

func TestReadOnlyDSN(t *testing.T) {
	dsn, err := readOnlyDSN("/data/a?b#c%d.db")
	require.NoError(t, err)
	assert.Equal(t, "file:///data/a%3Fb%23c%25d.db?mode=ro", dsn)

	rel, err := readOnlyDSN("x.db")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "file:///"), rel)
	assert.True(t, strings.HasSuffix(rel, "/x.db?mode=ro"), rel)
}
