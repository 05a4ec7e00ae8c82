package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/genesearch/internal/store"
)

// SampleRecords returns the two-record dataset used across tests.
// Decoded: P1 = "AAB", P2 = "ABB".
func SampleRecords() []store.Record {
	return []store.Record{
		{Name: "P1", Organism: "Human", Formula: "2A1B"},
		{Name: "P2", Organism: "Mouse", Formula: "1A2B"},
	}
}

// WriteTSV writes records as a tab-separated dataset file named name in
// dir and returns its path.
func WriteTSV(t *testing.T, dir, name string, records []store.Record) string {
	t.Helper()
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(rec.Name + "\t" + rec.Organism + "\t" + rec.Formula + "\n")
	}
	return WriteFile(t, dir, name, b.String())
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
