package dispatch

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONRecord is the line written for each outcome by JSONFormatter.
type JSONRecord struct {
	RunID   string   `json:"run_id,omitempty"`
	Seq     int      `json:"seq"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
	Status  Status   `json:"status"`
	Result  any      `json:"result,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SearchPayload is the result of a search command.
type SearchPayload struct {
	Organism string `json:"organism"`
	Name     string `json:"name"`
}

func (p SearchPayload) String() string {
	return fmt.Sprintf("%s\t%s", p.Organism, p.Name)
}

// DiffPayload is the result of a diff command.
type DiffPayload struct {
	Count int `json:"count"`
}

func (p DiffPayload) String() string {
	return fmt.Sprintf("%d", p.Count)
}

// ModePayload is the result of a mode command.
type ModePayload struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

func (p ModePayload) String() string {
	return fmt.Sprintf("%s\t%d", p.Symbol, p.Count)
}

// Payload returns the result value of out, or nil when it has none.
func Payload(out Outcome) any {
	switch {
	case out.Search != nil:
		return SearchPayload{Organism: out.Search.Organism, Name: out.Search.Name}
	case out.Diff != nil:
		return DiffPayload{Count: *out.Diff}
	case out.Mode != nil:
		return ModePayload{Symbol: out.Mode.SymbolString(), Count: out.Mode.Count}
	}
	return nil
}

// JSONFormatter writes one JSON object per outcome.
type JSONFormatter struct {
	W     io.Writer
	RunID string
}

func (f *JSONFormatter) Begin() error { return nil }

func (f *JSONFormatter) End() error { return nil }

func (f *JSONFormatter) Write(out Outcome) error {
	enc := json.NewEncoder(f.W)
	enc.SetEscapeHTML(false)
	return enc.Encode(NewJSONRecord(f.RunID, out))
}

// NewJSONRecord converts out into its JSON line form.
func NewJSONRecord(runID string, out Outcome) JSONRecord {
	rec := JSONRecord{
		RunID:   runID,
		Seq:     out.Seq,
		Command: out.Command.Name,
		Args:    out.Command.Args,
		Status:  out.Status,
	}
	if rec.Args == nil {
		rec.Args = []string{}
	}
	if out.Err != nil {
		rec.Error = out.Err.Error()
	}
	rec.Result = Payload(out)
	return rec
}
