package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roach88/genesearch/internal/codec"
	"github.com/roach88/genesearch/internal/store"
)

// Validation check names.
const (
	CheckSchema = "schema"
	CheckDecode = "decode"
)

// ValidationIssue is one problem found in a record.
type ValidationIssue struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Check   string `json:"check"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Records int               `json:"records"`
	Digest  string            `json:"digest"`
	Issues  []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every record of the dataset",
		Long: `Check every record against the record schema and decode every formula.

Reports each record with an empty name or a formula ending in a bare digit,
along with the dataset digest. Exits 1 if any issue is found.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	st, err := loadDataset(cmd.Context(), opts.Config)
	if err != nil {
		return err
	}
	formatter := newFormatter(opts, cmd, "")

	result, err := validateStore(st)
	if err != nil {
		return WrapExitError(ExitCommandError, "validation failed to run", err)
	}
	formatter.VerboseLog("Checked %d record(s)", result.Records)

	invalid := NewExitError(ExitFailure, fmt.Sprintf("%d validation issue(s)", len(result.Issues))).WithErrCode(ErrCodeInvalid)
	if opts.Config.Format == "json" {
		if !result.Valid {
			return formatter.Fail(invalid, result)
		}
		return formatter.Success(result)
	}

	renderValidation(cmd.OutOrStdout(), result)
	if !result.Valid {
		return invalid
	}
	return nil
}

// validateStore runs the schema check and a decode of every formula.
func validateStore(st *store.Store) (*ValidationResult, error) {
	records := st.Records()

	violations, err := store.CheckSchema(records)
	if err != nil {
		return nil, err
	}

	issues := []ValidationIssue{}
	for _, v := range violations {
		issues = append(issues, ValidationIssue{
			Index:   v.Index,
			Name:    v.Name,
			Check:   CheckSchema,
			Field:   v.Field,
			Message: v.Message,
		})
	}
	for i, rec := range records {
		if err := codec.Validate(rec.Formula); err != nil {
			issues = append(issues, ValidationIssue{
				Index:   i,
				Name:    rec.Name,
				Check:   CheckDecode,
				Field:   "formula",
				Message: err.Error(),
			})
		}
	}

	digest, err := st.Digest()
	if err != nil {
		return nil, err
	}

	return &ValidationResult{
		Valid:   len(issues) == 0,
		Records: len(records),
		Digest:  digest,
		Issues:  issues,
	}, nil
}

func renderValidation(w io.Writer, result *ValidationResult) {
	if result.Valid {
		fmt.Fprintf(w, "✓ %d record(s) valid\n", result.Records)
		fmt.Fprintf(w, "digest: %s\n", result.Digest)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Check", "Field", "Message"})
	for _, issue := range result.Issues {
		t.AppendRow(table.Row{issue.Index + 1, issue.Name, issue.Check, issue.Field, issue.Message})
	}
	t.Render()
	fmt.Fprintf(w, "✗ %d issue(s) in %d record(s)\n", len(result.Issues), result.Records)
	fmt.Fprintf(w, "digest: %s\n", result.Digest)
}
