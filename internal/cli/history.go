package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/giftcheck/internal/ir"
	"github.com/roach88/giftcheck/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Record   string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded match runs",
		Long: `List match runs recorded with match --record-run, oldest first.

Example:
  giftcheck history --db gifts.db
  giftcheck history --db gifts.db --record jirachi.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default $GIFTCHECK_DB)")
	cmd.Flags().StringVar(&opts.Record, "record", "", "only runs for this record file")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.config().DB
	}
	if dbPath == "" {
		return formatter.Fail(ExitCommandError, "no database: pass --db or set GIFTCHECK_DB", nil)
	}

	var recordHash string
	if opts.Record != "" {
		rec, err := loadRecord(opts.Record)
		if err != nil {
			return formatter.Fail(ExitCommandError, "failed to load record", err)
		}
		if recordHash, err = ir.RecordHash(rec); err != nil {
			return formatter.Fail(ExitCommandError, "failed to hash record", err)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	runs, err := st.ReadMatchRuns(cmd.Context(), recordHash)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to read history", err)
	}

	if formatter.JSON() {
		return formatter.Success(runs)
	}
	printHistoryText(formatter.Writer, runs)
	return nil
}

func printHistoryText(w io.Writer, runs []store.MatchRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs")
		return
	}

	for _, run := range runs {
		fmt.Fprintf(w, "#%d %s species %d (%s) catalog %s\n",
			run.Seq, run.ID, run.Record.Species, run.Record.Version, shortHash(run.CatalogHash))
		for _, r := range run.Results {
			fmt.Fprintf(w, "  %2d. gen%d/%04d  %-28s %s\n", r.Position+1, r.Generation, r.CardID, displayTitle(r.Title), r.Outcome)
		}
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
