package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roach88/genesearch/internal/codec"
	"github.com/roach88/genesearch/internal/store"
)

// RecordSummary is one row of the list command.
type RecordSummary struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Organism   string `json:"organism"`
	EncodedLen int    `json:"encoded_len"`
	DecodedLen int    `json:"decoded_len"` // -1 when the formula is malformed
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records of the dataset",
		Long: `List every record in load order with the lengths of its encoded and
decoded formula.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	st, err := loadDataset(cmd.Context(), opts.Config)
	if err != nil {
		return err
	}

	rows := summarize(st)
	if opts.Config.Format == "json" {
		return newFormatter(opts, cmd, "").Success(rows)
	}
	renderList(cmd.OutOrStdout(), rows)
	return nil
}

func summarize(st *store.Store) []RecordSummary {
	rows := make([]RecordSummary, 0, st.Len())
	for i, rec := range st.All() {
		n, err := codec.ExpandedLen(rec.Formula)
		if err != nil {
			n = -1
		}
		rows = append(rows, RecordSummary{
			Index:      i,
			Name:       rec.Name,
			Organism:   rec.Organism,
			EncodedLen: len([]rune(rec.Formula)),
			DecodedLen: n,
		})
	}
	return rows
}

func renderList(w io.Writer, rows []RecordSummary) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(0 records)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Organism", "Encoded", "Decoded"})
	for _, r := range rows {
		decoded := any(r.DecodedLen)
		if r.DecodedLen < 0 {
			decoded = "malformed"
		}
		t.AppendRow(table.Row{r.Index + 1, r.Name, r.Organism, r.EncodedLen, decoded})
	}
	t.Render()
	fmt.Fprintf(w, "(%d records)\n", len(rows))
}
