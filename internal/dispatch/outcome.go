package dispatch

import "github.com/roach88/genesearch/internal/query"

// Status classifies an Outcome.
type Status string

const (
	StatusOK               Status = "ok"
	StatusNotFound         Status = "not_found"
	StatusMissing          Status = "missing"
	StatusMalformed        Status = "malformed"
	StatusUnknownCommand   Status = "unknown_command"
	StatusInvalidArguments Status = "invalid_arguments"
	StatusError            Status = "error"
)

// Outcome is the result of executing one command.
// Exactly one of Search, Diff, Mode is set when Status is StatusOK.
type Outcome struct {
	Seq     int
	Command Command
	Status  Status

	Search *query.SearchResult
	Diff   *int
	Mode   *query.ModeResult

	Err error
}
