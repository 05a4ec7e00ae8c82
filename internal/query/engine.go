package query

import (
	"fmt"
	"strings"

	"github.com/roach88/genesearch/internal/codec"
	"github.com/roach88/genesearch/internal/store"
)

// SearchResult identifies the record a subsequence was found in.
type SearchResult struct {
	Organism string `json:"organism"`
	Name     string `json:"name"`
}

// ModeResult is the most frequent symbol of a decoded sequence.
// Symbol is 0 and Count is 0 for an empty sequence.
type ModeResult struct {
	Symbol rune `json:"-"`
	Count  int  `json:"count"`
}

// SymbolString returns Symbol as a string, or "" for an empty sequence.
func (m ModeResult) SymbolString() string {
	if m.Count == 0 {
		return ""
	}
	return string(m.Symbol)
}

// Engine runs queries against a Store.
type Engine struct {
	store *store.Store
}

// New returns an Engine over st. st must not be modified afterwards.
func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Search decodes query and returns the first record, in load order, whose
// decoded formula contains it as a contiguous substring.
//
// found is false when no record matches. When query itself is malformed,
// found is false and err wraps codec.ErrMalformedEncoding. A malformed
// stored formula reached before a match stops the scan with an error.
func (e *Engine) Search(query string) (res SearchResult, found bool, err error) {
	needle, err := codec.Decode(query)
	if err != nil {
		return SearchResult{}, false, fmt.Errorf("search query %q: %w", query, err)
	}

	for _, rec := range e.store.All() {
		seq, err := decodeRecord(rec)
		if err != nil {
			return SearchResult{}, false, err
		}
		if strings.Contains(seq, needle) {
			return SearchResult{Organism: rec.Organism, Name: rec.Name}, true, nil
		}
	}
	return SearchResult{}, false, nil
}

// Diff counts positions at which the decoded formulas of nameA and nameB
// differ, plus the difference of their lengths. found is false when either
// record is missing.
func (e *Engine) Diff(nameA, nameB string) (count int, found bool, err error) {
	recA, okA := e.store.FindByName(nameA)
	recB, okB := e.store.FindByName(nameB)
	if !okA || !okB {
		return 0, false, nil
	}

	seqA, err := decodeRecord(recA)
	if err != nil {
		return 0, false, err
	}
	seqB, err := decodeRecord(recB)
	if err != nil {
		return 0, false, err
	}

	return positionalDiff([]rune(seqA), []rune(seqB)), true, nil
}

// Mode returns the most frequent symbol in the decoded formula of name.
// Ties go to the smallest symbol. found is false when the record is missing.
func (e *Engine) Mode(name string) (res ModeResult, found bool, err error) {
	rec, ok := e.store.FindByName(name)
	if !ok {
		return ModeResult{}, false, nil
	}

	seq, err := decodeRecord(rec)
	if err != nil {
		return ModeResult{}, false, err
	}
	return mostFrequent(seq), true, nil
}

func decodeRecord(rec store.Record) (string, error) {
	seq, err := codec.Decode(rec.Formula)
	if err != nil {
		return "", fmt.Errorf("record %q: %w", rec.Name, err)
	}
	return seq, nil
}

// positionalDiff is a Hamming count over the shared prefix length with the
// length gap added as a tail penalty.
func positionalDiff(a, b []rune) int {
	n := min(len(a), len(b))
	count := len(a) - len(b)
	if count < 0 {
		count = -count
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

func mostFrequent(seq string) ModeResult {
	freq := make(map[rune]int)
	for _, r := range seq {
		freq[r]++
	}

	var best ModeResult
	for sym, n := range freq {
		if n > best.Count || (n == best.Count && sym < best.Symbol) {
			best = ModeResult{Symbol: sym, Count: n}
		}
	}
	return best
}
