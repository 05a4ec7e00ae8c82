package harness

// TraceEvent records one executed command.
type TraceEvent struct {
	Seq     int            `json:"seq"`
	Command string         `json:"command"`
	Args    []string       `json:"args"`
	Status  string         `json:"status"`
	Result  map[string]any `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace lists executed commands in order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds expectation and assertion failures.
	Errors []string `json:"errors,omitempty"`

	// Digest is the dataset digest the scenario ran against.
	Digest string `json:"digest"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// StatusCount returns how many trace events have the given status.
func (r *Result) StatusCount(status string) int {
	n := 0
	for _, ev := range r.Trace {
		if ev.Status == status {
			n++
		}
	}
	return n
}
