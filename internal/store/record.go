package store

// Record is one dataset entry.
// Formula holds the run-length-encoded sequence exactly as loaded.
type Record struct {
	Name     string `json:"name"`
	Organism string `json:"organism"`
	Formula  string `json:"formula"`
}
