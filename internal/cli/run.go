package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/genesearch/internal/dispatch"
	"github.com/roach88/genesearch/internal/query"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [commands-file]",
		Short: "Execute a command script against the dataset",
		Long: `Execute a command script against the dataset and write a report.

The script lists one command per line, tab-separated: search <formula>,
diff <name> <name>, or mode <name>. Files ending in .yaml or .yml hold a
"commands:" list instead. The script path may also come from the commands
config key.

Example:
  genesearch run -d sequences.txt commands.txt -o report.txt
  genesearch run -d proteins.db --format json commands.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(rootOpts, args, cmd)
		},
	}

	cmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().String("banner-author", "", "author line at the top of the text report")
	cmd.Flags().String("banner-title", "", "title line of the text report")

	return cmd
}

func runScript(opts *RootOptions, args []string, cmd *cobra.Command) (err error) {
	cfg := opts.Config

	scriptPath := cfg.Commands
	if len(args) == 1 {
		scriptPath = args[0]
	}
	if scriptPath == "" {
		return NewExitError(ExitCommandError, "no command script: pass a file or set commands in config")
	}

	st, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	cmds, err := dispatch.LoadScriptFile(scriptPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load command script", err)
	}
	slog.Info("script loaded", "path", scriptPath, "commands", len(cmds))

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		fh, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", createErr)
		}
		defer func() {
			if closeErr := fh.Close(); closeErr != nil && err == nil {
				err = WrapExitError(ExitCommandError, "failed to close output file", closeErr)
			}
		}()
		w = fh
	}

	runID := opts.RunIDs.Generate()
	slog.Info("run starting", "run_id", runID)

	var f dispatch.Formatter
	if cfg.Format == "json" {
		f = &dispatch.JSONFormatter{W: w, RunID: runID}
	} else {
		f = &dispatch.TextFormatter{W: w, Banner: dispatch.Banner{
			Author:    cfg.Banner.Author,
			Title:     cfg.Banner.Title,
			RuleWidth: cfg.Banner.RuleWidth,
		}}
	}

	d := dispatch.New(query.New(st))
	sum, err := d.Run(cmd.Context(), cmds, f)
	if err != nil {
		return WrapExitError(ExitFailure, "run aborted", err)
	}

	slog.Info("run finished",
		"run_id", runID,
		"commands", sum.Total,
		"ok", sum.ByStatus[dispatch.StatusOK],
		"malformed", sum.ByStatus[dispatch.StatusMalformed],
	)
	if cfg.Output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d command result(s) to %s\n", sum.Total, cfg.Output)
	}
	return nil
}
