package cli

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/genesearch/internal/testutil"
)

func TestQueryCommands_Text(t *testing.T) {
	dataset := sampleDataset(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"search", []string{"search", "-d", dataset, "2A"}, "Human\tP1\n"},
		{"diff", []string{"diff", "-d", dataset, "P1", "P2"}, "1\n"},
		{"mode", []string{"mode", "-d", dataset, "P1"}, "A\t2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := executeCLI(t, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestQueryCommands_Misses(t *testing.T) {
	dataset := sampleDataset(t)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"search not found", []string{"search", "-d", dataset, "3A"}, ErrCodeNotFound},
		{"diff missing", []string{"diff", "-d", dataset, "P1", "P9"}, ErrCodeMissing},
		{"mode missing", []string{"mode", "-d", dataset, "P9"}, ErrCodeMissing},
		{"malformed query", []string{"search", "-d", dataset, "A5"}, ErrCodeMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := executeCLI(t, tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, ExitFailure, GetExitCode(res.err))
			assert.Equal(t, tt.code, ErrorCode(res.err))
			assert.Contains(t, res.stdout, "Error ["+tt.code+"]")
		})
	}
}

func TestQueryCommands_JSON(t *testing.T) {
	dataset := sampleDataset(t)

	res := executeCLI(t, "mode", "-d", dataset, "--format", "json", "P2")
	require.NoError(t, res.err)

	var resp struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "B", resp.Data["symbol"])
	assert.Equal(t, float64(2), resp.Data["count"])
}

func TestQueryCommands_FailureJSON(t *testing.T) {
	dataset := sampleDataset(t)

	tests := []struct {
		name     string
		args     []string
		code     string
		message  string
		hasError bool
	}{
		{"not found", []string{"search", "3A"}, ErrCodeNotFound, "NOT FOUND", false},
		{"missing", []string{"diff", "P1", "P9"}, ErrCodeMissing, "MISSING", false},
		{"malformed", []string{"search", "A5"}, ErrCodeMalformed, "MALFORMED ENCODING", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{tt.args[0], "-d", dataset, "--format", "json"}, tt.args[1:]...)
			res := executeCLI(t, args...)
			require.Error(t, res.err)
			assert.Equal(t, ExitFailure, GetExitCode(res.err))

			var resp struct {
				Status string `json:"status"`
				Error  struct {
					Code    string         `json:"code"`
					Message string         `json:"message"`
					Details map[string]any `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.args[0], resp.Error.Details["command"])
			_, hasError := resp.Error.Details["error"]
			assert.Equal(t, tt.hasError, hasError)
		})
	}
}

func TestQueryCommands_WrongArity(t *testing.T) {
	res := executeCLI(t, "diff", "-d", sampleDataset(t), "P1")
	assert.Error(t, res.err)
}

func TestQueryCommands_SQLiteDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proteins.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE proteins (name TEXT, organism TEXT, formula TEXT)`)
	require.NoError(t, err)
	for _, rec := range testutil.SampleRecords() {
		_, err = db.Exec(`INSERT INTO proteins VALUES (?, ?, ?)`, rec.Name, rec.Organism, rec.Formula)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	res := executeCLI(t, "search", "-d", path, "--table", "proteins", "1A2B")
	require.NoError(t, res.err)
	assert.Equal(t, "Mouse\tP2\n", res.stdout)
}
