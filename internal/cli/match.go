package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/giftcheck/internal/engine"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/store"
)

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	*RootOptions
	SourceFlags
	RecordRun bool
	Limit     int
}

// MatchEntry is one eligible gift in yield order.
type MatchEntry struct {
	Position   int            `json:"position"`
	Key        string         `json:"key"`
	GiftID     string         `json:"gift_id"`
	Generation int            `json:"generation"`
	CardID     int            `json:"card_id"`
	Species    int            `json:"species"`
	Title      string         `json:"title"`
	Outcome    engine.Outcome `json:"outcome"`
	Reason     engine.Reason  `json:"reason,omitempty"`
}

// MatchResult is the output of the match command.
type MatchResult struct {
	RecordHash  string       `json:"record_hash"`
	CatalogHash string       `json:"catalog_hash"`
	RunID       string       `json:"run_id,omitempty"`
	Gifts       []MatchEntry `json:"gifts"`
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "match <record-file>",
		Short: "List the gifts a record could have come from",
		Long: `List every gift template the record is consistent with.

Exact matches come first in catalog order, followed by templates the
record is only loosely consistent with (it evolved since, the card was
not receivable on its game, or the event did not enforce some field).

Exits 1 when no gift matches.

Example:
  giftcheck match --catalog ./catalogs jirachi.yaml
  giftcheck match --db gifts.db --record-run --format json pikachu.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog directory")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database with an imported catalog")
	cmd.Flags().BoolVar(&opts.RecordRun, "record-run", false, "record the result in the database history")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after n gifts (0 = all)")

	return cmd
}

func runMatch(opts *MatchOptions, recordPath string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()
	flags := opts.SourceFlags.resolve(opts.RootOptions)

	if opts.RecordRun && flags.Database == "" {
		return formatter.Fail(ExitCommandError, "--record-run requires --db", nil)
	}

	rec, err := loadRecord(recordPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to load record", err)
	}
	src, err := LoadSource(cmd.Context(), flags, logger)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to load catalog", err)
	}
	formatter.VerboseLog("Matching %s against %d gift(s) from %s", recordPath, src.Catalog.Len(), src.Origin)

	recordHash, err := ir.RecordHash(rec)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to hash record", err)
	}

	result := MatchResult{RecordHash: recordHash, CatalogHash: src.Hash, Gifts: []MatchEntry{}}
	eng := src.Engine(logger)
	for g := range eng.EligibleGifts(rec) {
		entry, err := newMatchEntry(eng, rec, g, len(result.Gifts)+1)
		if err != nil {
			return formatter.Fail(ExitCommandError, "failed to identify gift", err)
		}
		result.Gifts = append(result.Gifts, entry)
		if opts.Limit > 0 && len(result.Gifts) >= opts.Limit {
			break
		}
	}

	if opts.RecordRun {
		if result.RunID, err = recordRun(cmd, opts, flags.Database, rec, &result); err != nil {
			return formatter.Fail(ExitCommandError, "failed to record run", err)
		}
	}

	if formatter.JSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		printMatchText(formatter.Writer, rec, result)
	}

	if len(result.Gifts) == 0 {
		return NewExitError(ExitFailure, "no eligible gift")
	}
	return nil
}

// newMatchEntry describes a yielded gift. The outcome comes from Explain,
// which shares its predicates with the matcher that yielded g.
func newMatchEntry(eng *engine.Engine, rec *pkm.Record, g gift.Gift, position int) (MatchEntry, error) {
	id, err := ir.GiftID(g.Generation(), g)
	if err != nil {
		return MatchEntry{}, err
	}
	info := g.Info()
	verdict := eng.Explain(rec, g)
	return MatchEntry{
		Position:   position,
		Key:        gift.Key(g),
		GiftID:     id,
		Generation: g.Generation(),
		CardID:     info.CardID,
		Species:    info.Species,
		Title:      info.Title,
		Outcome:    verdict.Outcome,
		Reason:     verdict.Reason,
	}, nil
}

func recordRun(cmd *cobra.Command, opts *MatchOptions, dbPath string, rec *pkm.Record, result *MatchResult) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run := store.MatchRun{
		ID:            opts.runIDs().Generate(),
		RecordHash:    result.RecordHash,
		Record:        rec,
		CatalogHash:   result.CatalogHash,
		EngineVersion: ir.EngineVersion,
		IRVersion:     ir.IRVersion,
	}
	for _, e := range result.Gifts {
		run.Results = append(run.Results, store.MatchResult{
			GiftID:     e.GiftID,
			Generation: e.Generation,
			CardID:     e.CardID,
			Title:      e.Title,
			Outcome:    e.Outcome.String(),
		})
	}

	seq, err := st.WriteMatchRun(cmd.Context(), run)
	if err != nil {
		return "", err
	}
	opts.logger().Info("match run recorded", "run_id", run.ID, "seq", seq, "gifts", len(run.Results))
	return run.ID, nil
}

func printMatchText(w io.Writer, rec *pkm.Record, result MatchResult) {
	if len(result.Gifts) == 0 {
		fmt.Fprintf(w, "✗ No eligible gifts for species %d (%s, %s)\n", rec.Species, rec.Version, rec.Container)
		return
	}

	fmt.Fprintf(w, "✓ %d eligible gift(s) for species %d (%s, %s)\n", len(result.Gifts), rec.Species, rec.Version, rec.Container)
	for _, e := range result.Gifts {
		fmt.Fprintf(w, "  %2d. %s  %-28s %s", e.Position, e.Key, displayTitle(e.Title), e.Outcome)
		if e.Outcome == engine.Deferred && e.Reason != "" {
			fmt.Fprintf(w, " (%s)", e.Reason)
		}
		fmt.Fprintln(w)
	}
	if result.RunID != "" {
		fmt.Fprintf(w, "Recorded run %s\n", result.RunID)
	}
}

func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}
