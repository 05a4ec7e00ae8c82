package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/genesearch/internal/testutil"
)

func TestRun_InlineRecords(t *testing.T) {
	scenario := &Scenario{
		Name:        "inline",
		Description: "inline records",
		Records:     testutil.SampleRecords(),
		Flow: []FlowStep{
			{Command: "search", Args: []string{"AAB"}, Expect: &ExpectClause{Status: "ok", Result: map[string]any{"name": "P1"}}},
			{Command: "diff", Args: []string{"P1", "P2"}, Expect: &ExpectClause{Status: "ok", Result: map[string]any{"count": 1}}},
			{Command: "mode", Args: []string{"P1"}, Expect: &ExpectClause{Status: "ok", Result: map[string]any{"symbol": "A", "count": 2}}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Trace, 3)
	assert.Equal(t, 1, result.Trace[0].Seq)
	assert.Equal(t, "Human", result.Trace[0].Result["organism"])
	assert.Equal(t, float64(1), result.Trace[1].Result["count"])
	assert.Len(t, result.Digest, 64)
}

func TestRun_StatusMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "expects the wrong status",
		Records:     testutil.SampleRecords(),
		Flow: []FlowStep{
			{Command: "mode", Args: []string{"P9"}, Expect: &ExpectClause{Status: "ok"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `step 1 (mode): expected status "ok", got "missing"`)
}

func TestRun_ResultMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "result_mismatch",
		Description: "expects the wrong result fields",
		Records:     testutil.SampleRecords(),
		Flow: []FlowStep{
			{Command: "mode", Args: []string{"P1"}, Expect: &ExpectClause{
				Status: "ok",
				Result: map[string]any{"symbol": "B", "extra": true},
			}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `result missing field "extra"`)
	assert.Contains(t, result.Errors[1], `result field "symbol": expected B, got A`)
}

func TestRun_ErrorCarriedInTrace(t *testing.T) {
	scenario := &Scenario{
		Name:        "malformed",
		Description: "malformed query",
		Records:     testutil.SampleRecords(),
		Flow: []FlowStep{
			{Command: "search", Args: []string{"A2"}},
			{Command: "diff", Args: []string{"P1"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, "malformed", result.Trace[0].Status)
	assert.NotEmpty(t, result.Trace[0].Error)
	assert.Nil(t, result.Trace[0].Result)
	assert.Equal(t, "invalid_arguments", result.Trace[1].Status)
	assert.Equal(t, []string{"P1"}, result.Trace[1].Args)
}

func TestRun_DatasetFile(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/dataset_errors.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, []string{}, result.Trace[5].Args)
}

func TestRun_MissingDataset(t *testing.T) {
	scenario := &Scenario{
		Name:        "no_dataset",
		Description: "dataset file does not exist",
		Dataset:     "testdata/scenarios/data/missing.tsv",
		Flow:        []FlowStep{{Command: "mode", Args: []string{"P1"}}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "no_dataset"`)
}
