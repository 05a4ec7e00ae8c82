package testutil

import "testing"

func TestFixedRunIDGenerator(t *testing.T) {
	gen := NewFixedRunIDGenerator("run-1")
	for i := 0; i < 3; i++ {
		if got := gen.Generate(); got != "run-1" {
			t.Fatalf("Generate() = %q, want run-1", got)
		}
	}

	if got := NewFixedRunIDGenerator("").Generate(); got != "test-run-default" {
		t.Errorf("default id = %q", got)
	}
}
