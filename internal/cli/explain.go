package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/giftcheck/internal/catalog"
	"github.com/roach88/giftcheck/internal/engine"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	SourceFlags
	Generation int
	CardID     int
}

// ExplainResult is the output of the explain command.
type ExplainResult struct {
	Key     string         `json:"key"`
	GiftID  string         `json:"gift_id"`
	Title   string         `json:"title"`
	Outcome engine.Outcome `json:"outcome"`
	Reason  engine.Reason  `json:"reason,omitempty"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain <record-file>",
		Short: "Explain why one gift does or does not match a record",
		Long: `Classify a single gift template against a record as exact, deferred
or rejected, with the reason.

Exits 1 when the template is rejected.

Example:
  giftcheck explain --catalog ./catalogs --gen 6 --card 525 diancie.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog directory")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database with an imported catalog")
	cmd.Flags().IntVar(&opts.Generation, "gen", 0, "generation of the gift (3-7, required)")
	cmd.Flags().IntVar(&opts.CardID, "card", 0, "card ID of the gift (required)")
	_ = cmd.MarkFlagRequired("gen")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func runExplain(opts *ExplainOptions, recordPath string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	rec, err := loadRecord(recordPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to load record", err)
	}
	src, err := LoadSource(cmd.Context(), opts.SourceFlags.resolve(opts.RootOptions), logger)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to load catalog", err)
	}

	g, ok := src.Catalog.Find(opts.Generation, opts.CardID)
	if !ok {
		_ = formatter.Error(catalog.ErrCodeNotFound, fmt.Sprintf("no gen %d gift with card %d in %s", opts.Generation, opts.CardID, src.Origin), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: gift not found", catalog.ErrCodeNotFound))
	}

	id, err := ir.GiftID(g.Generation(), g)
	if err != nil {
		return formatter.Fail(ExitCommandError, "failed to identify gift", err)
	}
	verdict := src.Engine(logger).Explain(rec, g)
	result := ExplainResult{
		Key:     gift.Key(g),
		GiftID:  id,
		Title:   g.Info().Title,
		Outcome: verdict.Outcome,
		Reason:  verdict.Reason,
	}

	if formatter.JSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		mark := "✓"
		if verdict.Outcome == engine.Rejected {
			mark = "✗"
		}
		fmt.Fprintf(formatter.Writer, "%s %s %s: %s", mark, result.Key, displayTitle(result.Title), result.Outcome)
		if result.Reason != "" {
			fmt.Fprintf(formatter.Writer, " (%s)", result.Reason)
		}
		fmt.Fprintln(formatter.Writer)
	}

	if verdict.Outcome == engine.Rejected {
		return NewExitError(ExitFailure, fmt.Sprintf("gift rejected: %s", verdict.Reason))
	}
	return nil
}
