package harness

import (
	"fmt"
	"strings"
)

// EvaluateAssertions checks assertions against a completed result and
// returns one message per failed assertion.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluateAssertion(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertion[%d] %s: %v", i, a.Type, err))
		}
	}
	return failures
}

func evaluateAssertion(result *Result, a Assertion) error {
	switch a.Type {
	case AssertStatusCount:
		return assertStatusCount(result, a.Status, a.Count)
	case AssertStatusOrder:
		return assertStatusOrder(result, a.Statuses)
	case AssertDigest:
		return assertDigest(result, a.Digest)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertStatusCount(result *Result, status string, want int) error {
	if got := result.StatusCount(status); got != want {
		return fmt.Errorf("expected %d %q outcome(s), got %d", want, status, got)
	}
	return nil
}

// assertStatusOrder checks that statuses appear in the trace in order,
// not necessarily adjacent.
func assertStatusOrder(result *Result, statuses []string) error {
	next := 0
	for _, ev := range result.Trace {
		if next < len(statuses) && ev.Status == statuses[next] {
			next++
		}
	}
	if next < len(statuses) {
		return fmt.Errorf("status %q not found in order after [%s]", statuses[next], strings.Join(statuses[:next], ", "))
	}
	return nil
}

func assertDigest(result *Result, want string) error {
	if result.Digest != want {
		return fmt.Errorf("expected digest %s, got %s", want, result.Digest)
	}
	return nil
}
