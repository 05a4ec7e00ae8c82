package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/genesearch/internal/config"
	"github.com/roach88/genesearch/internal/dispatch"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string

	// Config is populated before any subcommand runs.
	Config *config.Config

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs dispatch.RunIDGenerator
}

// NewRootCommand creates the root command for the genesearch CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesearch",
		Short: "Query run-length-encoded sequence datasets",
		Long: `genesearch loads a dataset of records (name, organism, run-length-encoded
formula) and answers search, diff and mode queries against the decoded sequences.

Settings come from flags, GENESEARCH_* environment variables and an optional
genesearch.yaml, in that order of precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.Config = cfg
			setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				slog.Debug("config loaded", "file", cfg.File)
			}
			if opts.RunIDs == nil {
				opts.RunIDs = dispatch.UUIDv7Generator{}
			}
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (default genesearch.yaml in the working directory)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("format", config.DefaultFormat, "output format (json|text)")
	pf.StringP("dataset", "d", "", "dataset file (TSV or SQLite)")
	pf.String("dataset-format", config.FormatAuto, "dataset format (auto|tsv|sqlite)")
	pf.String("table", config.DefaultTable, "SQLite table holding the records")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewModeCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// newFormatter builds an OutputFormatter for cmd from the loaded config.
func newFormatter(opts *RootOptions, cmd *cobra.Command, runID string) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Config.Verbose,
		RunID:     runID,
	}
}
