package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/genesearch/internal/testutil"
)

// cliResult captures one command execution.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// executeCLI runs the root command with args in a scratch working
// directory so no stray genesearch.yaml is read.
func executeCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&RootOptions{RunIDs: testutil.NewFixedRunIDGenerator("run-test")})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// sampleDataset writes the shared two-record dataset and returns its path.
func sampleDataset(t *testing.T) string {
	t.Helper()
	return testutil.WriteTSV(t, t.TempDir(), "sequences.txt", testutil.SampleRecords())
}

// goldenFixtureDir returns the absolute path of testdata/golden. Call it
// before executeCLI, which changes the working directory.
func goldenFixtureDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("testdata", "golden"))
	require.NoError(t, err)
	return dir
}
