package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/genesearch/internal/config"
	"github.com/roach88/genesearch/internal/store"
)

// loadDataset opens the configured dataset and returns its store.
func loadDataset(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	if cfg.Dataset == "" {
		return nil, NewExitError(ExitCommandError, "no dataset: set --dataset, GENESEARCH_DATASET or dataset in genesearch.yaml")
	}

	format := cfg.ResolveDatasetFormat()
	slog.Info("loading dataset", "path", cfg.Dataset, "format", format)

	var (
		st  *store.Store
		err error
	)
	switch format {
	case config.FormatSQLite:
		st, err = store.LoadSQLite(ctx, cfg.Dataset, cfg.SQLiteTable)
	default:
		st, err = store.LoadTSVFile(cfg.Dataset)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	digest, err := st.Digest()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to digest dataset", err)
	}
	slog.Info("dataset loaded", "records", st.Len(), "digest", shortDigest(digest))
	return st, nil
}

// shortDigest abbreviates a hex digest for log lines.
func shortDigest(d string) string {
	if len(d) <= 12 {
		return d
	}
	return fmt.Sprintf("%s…", d[:12])
}
