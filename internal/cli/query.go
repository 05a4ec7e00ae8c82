package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/genesearch/internal/dispatch"
	"github.com/roach88/genesearch/internal/query"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return newQueryCommand(rootOpts, dispatch.CmdSearch, &cobra.Command{
		Use:   "search <formula>",
		Short: "Find the first record containing an encoded subsequence",
		Long: `Decode the argument and print the organism and name of the first record
whose decoded formula contains it.

Example:
  genesearch search -d sequences.txt 2A1B`,
		Args: cobra.ExactArgs(1),
	})
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return newQueryCommand(rootOpts, dispatch.CmdDiff, &cobra.Command{
		Use:   "diff <name> <name>",
		Short: "Count positional differences between two records",
		Long: `Count the positions at which two decoded formulas differ, plus the
difference of their lengths.

Example:
  genesearch diff -d sequences.txt P1 P2`,
		Args: cobra.ExactArgs(2),
	})
}

// NewModeCommand creates the mode command.
func NewModeCommand(rootOpts *RootOptions) *cobra.Command {
	return newQueryCommand(rootOpts, dispatch.CmdMode, &cobra.Command{
		Use:   "mode <name>",
		Short: "Print the most frequent symbol of a record",
		Long: `Print the most frequent symbol of a record's decoded formula and its
count. Ties go to the smallest symbol.

Example:
  genesearch mode -d sequences.txt P1`,
		Args: cobra.ExactArgs(1),
	})
}

func newQueryCommand(rootOpts *RootOptions, name string, cmd *cobra.Command) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runQuery(rootOpts, name, args, cmd)
	}
	return cmd
}

// queryFailure describes how a non-ok status is reported.
type queryFailure struct {
	errCode string
	message string
}

var queryFailures = map[dispatch.Status]queryFailure{
	dispatch.StatusNotFound:  {ErrCodeNotFound, "NOT FOUND"},
	dispatch.StatusMissing:   {ErrCodeMissing, "MISSING"},
	dispatch.StatusMalformed: {ErrCodeMalformed, "MALFORMED ENCODING"},
}

// runQuery executes one command and reports it through OutputFormatter.
// Misses exit with ExitFailure so scripts can test the result.
func runQuery(opts *RootOptions, name string, args []string, cmd *cobra.Command) error {
	st, err := loadDataset(cmd.Context(), opts.Config)
	if err != nil {
		return err
	}

	formatter := newFormatter(opts, cmd, "")
	out := dispatch.New(query.New(st)).Execute(1, dispatch.Command{Name: name, Args: args})
	if out.Status == dispatch.StatusOK {
		return formatter.Success(dispatch.Payload(out))
	}

	details := map[string]any{"command": name, "args": args}
	if out.Err != nil {
		details["error"] = out.Err.Error()
	}

	failure, ok := queryFailures[out.Status]
	if !ok {
		return formatter.Fail(WrapExitError(ExitCommandError, "query failed", out.Err), details)
	}
	return formatter.Fail(WrapExitError(ExitFailure, failure.message, out.Err).WithErrCode(failure.errCode), details)
}
