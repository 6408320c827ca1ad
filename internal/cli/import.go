package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/giftcheck/internal/catalog"
	"github.com/roach88/giftcheck/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database string
}

// ImportResult is the output of the import command.
type ImportResult struct {
	Database string `json:"database"`
	Files    int    `json:"files"`
	store.ImportSummary
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <catalog-dir>",
		Short: "Import a catalog directory into a SQLite database",
		Long: `Load and validate a catalog directory and store it in a SQLite
database, replacing any catalog imported before. Match history is kept.

Example:
  giftcheck import --db gifts.db ./catalogs`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default $GIFTCHECK_DB)")

	return cmd
}

func runImport(opts *ImportOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.config().DB
	}
	if dbPath == "" {
		return formatter.Fail(ExitCommandError, "no database: pass --db or set GIFTCHECK_DB", nil)
	}

	loaded, errs := catalog.LoadDir(dir, catalog.LoadModeFailFast)
	if len(errs) > 0 {
		return formatter.Fail(ExitCommandError, "failed to load catalog", errs[0])
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	summary, err := st.ImportCatalog(cmd.Context(), loaded.Catalog, loaded.Evolutions)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to import catalog", err)
	}
	logger.Info("catalog imported", "db", dbPath, "gifts", summary.Gifts, "catalog_hash", summary.CatalogHash)

	result := ImportResult{Database: dbPath, Files: len(loaded.Files), ImportSummary: summary}
	if formatter.JSON() {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Imported %d gift(s) and %d evolution edge(s) from %d file(s) into %s\n",
		summary.Gifts, summary.Evolutions, result.Files, dbPath)
	fmt.Fprintf(formatter.Writer, "  catalog %s\n", summary.CatalogHash)
	return nil
}
