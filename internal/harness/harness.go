package harness

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/roach88/genesearch/internal/dispatch"
	"github.com/roach88/genesearch/internal/query"
	"github.com/roach88/genesearch/internal/store"
)

// Run executes a scenario and returns its trace and verdict.
// An error is returned only when the scenario cannot be executed at all;
// failed expectations are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	st, err := loadStore(scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.Digest, err = st.Digest()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	d := dispatch.New(query.New(st))
	for i, step := range scenario.Flow {
		seq := i + 1
		out := d.Execute(seq, dispatch.Command{Name: step.Command, Args: step.Args})

		ev, err := traceEvent(out)
		if err != nil {
			return nil, fmt.Errorf("scenario %q step %d: %w", scenario.Name, seq, err)
		}
		result.Trace = append(result.Trace, ev)

		if step.Expect != nil {
			checkExpect(result, seq, step.Expect, ev)
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func loadStore(scenario *Scenario) (*store.Store, error) {
	if scenario.Dataset == "" {
		return store.Load(scenario.Records), nil
	}
	st, err := store.LoadTSVFile(scenario.Dataset)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return st, nil
}

func traceEvent(out dispatch.Outcome) (TraceEvent, error) {
	ev := TraceEvent{
		Seq:     out.Seq,
		Command: out.Command.Name,
		Args:    out.Command.Args,
		Status:  string(out.Status),
	}
	if ev.Args == nil {
		ev.Args = []string{}
	}
	if out.Err != nil {
		ev.Error = out.Err.Error()
	}
	if payload := dispatch.Payload(out); payload != nil {
		m, err := toMap(payload)
		if err != nil {
			return ev, err
		}
		ev.Result = m
	}
	return ev, nil
}

func checkExpect(result *Result, seq int, want *ExpectClause, got TraceEvent) {
	if got.Status != want.Status {
		result.AddError(fmt.Sprintf("step %d (%s): expected status %q, got %q", seq, got.Command, want.Status, got.Status))
		return
	}
	if len(want.Result) == 0 {
		return
	}

	expected, err := toMap(want.Result)
	if err != nil {
		result.AddError(fmt.Sprintf("step %d (%s): invalid expected result: %v", seq, got.Command, err))
		return
	}

	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		actual, ok := got.Result[k]
		if !ok {
			result.AddError(fmt.Sprintf("step %d (%s): result missing field %q", seq, got.Command, k))
			continue
		}
		if !reflect.DeepEqual(expected[k], actual) {
			result.AddError(fmt.Sprintf("step %d (%s): result field %q: expected %v, got %v", seq, got.Command, k, expected[k], actual))
		}
	}
}

// toMap round-trips v through JSON so YAML ints and payload ints compare
// as the same float64 values.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
