package store

import "iter"

// Store is an ordered, read-only collection of records.
// The zero value is an empty store.
type Store struct {
	records []Record

	// byName maps a name to the index of its first occurrence.
	byName map[string]int
}

// Load builds a Store from records, keeping their order.
// The slice is copied; later changes to it do not affect the Store.
func Load(records []Record) *Store {
	s := &Store{
		records: make([]Record, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	copy(s.records, records)

	for i, rec := range s.records {
		if _, seen := s.byName[rec.Name]; !seen {
			s.byName[rec.Name] = i
		}
	}
	return s
}

// FindByName returns the first record whose name equals name exactly.
// The second result is false when no record matches.
func (s *Store) FindByName(name string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	i, ok := s.byName[name]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of all records in load order.
func (s *Store) Records() []Record {
	if s == nil {
		return []Record{}
	}
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// All iterates the records in load order.
func (s *Store) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if s == nil {
			return
		}
		for i, rec := range s.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}
