package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/genesearch/internal/codec"
	"github.com/roach88/genesearch/internal/query"
)

// Querier is the query surface the dispatcher drives.
// *query.Engine implements it.
type Querier interface {
	Search(q string) (query.SearchResult, bool, error)
	Diff(nameA, nameB string) (int, bool, error)
	Mode(name string) (query.ModeResult, bool, error)
}

// Formatter renders outcomes. Begin is called once before the first
// outcome and End once after the last.
type Formatter interface {
	Begin() error
	Write(Outcome) error
	End() error
}

// Summary counts outcomes by status.
type Summary struct {
	Total    int
	ByStatus map[Status]int
}

// Dispatcher maps commands onto a Querier.
type Dispatcher struct {
	q Querier
}

// New returns a Dispatcher over q.
func New(q Querier) *Dispatcher {
	return &Dispatcher{q: q}
}

// Execute runs cmd and classifies its result. seq is the 1-based position
// of cmd in its script.
func (d *Dispatcher) Execute(seq int, cmd Command) Outcome {
	out := Outcome{Seq: seq, Command: cmd}

	want, known := arity[cmd.Name]
	if !known {
		out.Status = StatusUnknownCommand
		return out
	}
	if len(cmd.Args) != want {
		out.Status = StatusInvalidArguments
		out.Err = fmt.Errorf("%s expects %d argument(s), got %d", cmd.Name, want, len(cmd.Args))
		return out
	}

	var (
		found bool
		err   error
	)
	switch cmd.Name {
	case CmdSearch:
		var res query.SearchResult
		res, found, err = d.q.Search(cmd.Args[0])
		if found {
			out.Search = &res
		}
	case CmdDiff:
		var n int
		n, found, err = d.q.Diff(cmd.Args[0], cmd.Args[1])
		if found {
			out.Diff = &n
		}
	case CmdMode:
		var res query.ModeResult
		res, found, err = d.q.Mode(cmd.Args[0])
		if found {
			out.Mode = &res
		}
	}

	switch {
	case err != nil && codec.IsMalformed(err):
		out.Status = StatusMalformed
		out.Err = err
	case err != nil:
		out.Status = StatusError
		out.Err = err
	case found:
		out.Status = StatusOK
	case cmd.Name == CmdSearch:
		out.Status = StatusNotFound
	default:
		out.Status = StatusMissing
	}
	return out
}

// Run executes cmds in order and writes each outcome to f.
// Cancelling ctx stops the run between commands.
func (d *Dispatcher) Run(ctx context.Context, cmds []Command, f Formatter) (Summary, error) {
	sum := Summary{ByStatus: make(map[Status]int)}

	if err := f.Begin(); err != nil {
		return sum, fmt.Errorf("write header: %w", err)
	}
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		out := d.Execute(i+1, cmd)
		slog.Debug("command executed",
			"seq", out.Seq,
			"command", cmd.Name,
			"status", out.Status,
		)
		if out.Err != nil && out.Status != StatusInvalidArguments {
			slog.Warn("command failed", "seq", out.Seq, "command", cmd.Name, "line", cmd.Line, "error", out.Err)
		}

		if err := f.Write(out); err != nil {
			return sum, fmt.Errorf("write command %d: %w", out.Seq, err)
		}
		sum.Total++
		sum.ByStatus[out.Status]++
	}
	if err := f.End(); err != nil {
		return sum, fmt.Errorf("write footer: %w", err)
	}
	return sum, nil
}
