package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "genesearch", cmd.Use)
	assert.Contains(t, cmd.Long, "run-length-encoded")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"run", "search", "diff", "mode", "validate", "list", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	datasetFlag := cmd.PersistentFlags().Lookup("dataset")
	require.NotNil(t, datasetFlag)
	assert.Equal(t, "d", datasetFlag.Shorthand)

	dsFormat := cmd.PersistentFlags().Lookup("dataset-format")
	require.NotNil(t, dsFormat)
	assert.Equal(t, "auto", dsFormat.DefValue)
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	runCmd, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	outputFlag := runCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.NotNil(t, runCmd.Flags().Lookup("banner-author"))
	assert.NotNil(t, runCmd.Flags().Lookup("banner-title"))
}

func TestInvalidFormat(t *testing.T) {
	res := executeCLI(t, "list", "--format", "xml", "-d", sampleDataset(t))
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), "invalid format")
}

func TestMissingDataset(t *testing.T) {
	res := executeCLI(t, "mode", "P1")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), "no dataset")
}
