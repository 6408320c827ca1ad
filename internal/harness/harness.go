package harness

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/roach88/giftcheck/internal/catalog"
	"github.com/roach88/giftcheck/internal/engine"
	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/store"
	"github.com/roach88/giftcheck/internal/testutil"
)

// Harness is the execution state of one scenario.
type Harness struct {
	store   *store.Store
	engine  *engine.Engine
	catalog *gift.Catalog
	record  *pkm.Record
	runIDs  store.RunIDGenerator
	logger  *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database. The catalog is
// imported into it and read back before matching, so every scenario also
// covers the store round trip.
//
// Execution flow:
// 1. Load the catalog and the record
// 2. Import the catalog and read it back
// 3. Collect the yield sequence, classifying each gift with Explain
// 4. Record the match run
// 5. Compare against expect and evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	ctx := context.Background()

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	loaded, err := loadCatalog(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	rec, err := loadRecord(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	summary, err := st.ImportCatalog(ctx, loaded.Catalog, loaded.Evolutions)
	if err != nil {
		return nil, fmt.Errorf("failed to import catalog: %w", err)
	}
	cat, err := st.ReadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	edges, err := st.ReadEvolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read evolutions: %w", err)
	}

	logger := slog.New(slog.DiscardHandler)
	h := &Harness{
		store:   st,
		catalog: cat,
		record:  rec,
		runIDs:  testutil.NewFixedRunIDGenerator(runID(scenario)),
		logger:  logger,
		engine: engine.New(cat,
			engine.WithPreEvolver(evolution.NewTree(edges)),
			engine.WithLogger(logger),
		),
	}

	result := NewResult()
	result.CatalogHash = summary.CatalogHash
	if result.RecordHash, err = ir.RecordHash(rec); err != nil {
		return nil, fmt.Errorf("failed to hash record: %w", err)
	}

	if err := h.collect(result); err != nil {
		return nil, err
	}
	if err := h.recordRun(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	for _, msg := range compareExpect(result.Matches, scenario.Expect) {
		result.AddError(msg)
	}
	actx := &AssertionContext{Ctx: ctx, Store: st, Engine: h.engine, Catalog: cat, Record: rec}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(msg)
	}
	return result, nil
}

func runID(s *Scenario) string {
	if s.RunID != "" {
		return s.RunID
	}
	return "run-0001"
}

// collect drains the yield sequence into result.
func (h *Harness) collect(result *Result) error {
	for g := range h.engine.EligibleGifts(h.record) {
		id, err := ir.GiftID(g.Generation(), g)
		if err != nil {
			return fmt.Errorf("failed to identify %s: %w", gift.Key(g), err)
		}
		verdict := h.engine.Explain(h.record, g)
		result.AddMatch(Match{
			Key:        gift.Key(g),
			GiftID:     id,
			Generation: g.Generation(),
			CardID:     g.Info().CardID,
			Title:      g.Info().Title,
			Outcome:    verdict.Outcome,
			Reason:     verdict.Reason,
		})
		h.logger.Debug("yielded", "key", gift.Key(g), "outcome", verdict.Outcome)
	}
	return nil
}

func (h *Harness) recordRun(ctx context.Context, result *Result) error {
	run := store.MatchRun{
		ID:            h.runIDs.Generate(),
		RecordHash:    result.RecordHash,
		Record:        h.record,
		CatalogHash:   result.CatalogHash,
		EngineVersion: ir.EngineVersion,
		IRVersion:     ir.IRVersion,
	}
	for _, m := range result.Matches {
		run.Results = append(run.Results, store.MatchResult{
			GiftID:     m.GiftID,
			Generation: m.Generation,
			CardID:     m.CardID,
			Title:      m.Title,
			Outcome:    m.Outcome.String(),
		})
	}
	if _, err := h.store.WriteMatchRun(ctx, run); err != nil {
		return err
	}
	result.RunID = run.ID
	return nil
}

// compareExpect checks the yield sequence position by position.
func compareExpect(actual []Match, expected []ExpectedGift) []string {
	var errs []string
	for i := range max(len(actual), len(expected)) {
		switch {
		case i >= len(actual):
			errs = append(errs, fmt.Sprintf("position %d: expected %s (%s), got nothing", i+1, expected[i].Key, expected[i].Outcome))
			continue
		case i >= len(expected):
			errs = append(errs, fmt.Sprintf("position %d: unexpected %s (%s)", i+1, actual[i].Key, actual[i].Outcome))
			continue
		}

		got, want := actual[i], expected[i]
		if got.Key != want.Key || got.Outcome.String() != want.Outcome {
			errs = append(errs, fmt.Sprintf("position %d: expected %s (%s), got %s (%s)", i+1, want.Key, want.Outcome, got.Key, got.Outcome))
		}
		if want.Title != "" && got.Title != want.Title {
			errs = append(errs, fmt.Sprintf("position %d: expected title %q, got %q", i+1, want.Title, got.Title))
		}
		if want.Reason != "" && string(got.Reason) != want.Reason {
			errs = append(errs, fmt.Sprintf("position %d: expected reason %q, got %q", i+1, want.Reason, got.Reason))
		}
	}
	return errs
}

func loadCatalog(s *Scenario) (*catalog.Result, error) {
	if s.CatalogDir != "" {
		result, errs := catalog.LoadDir(s.CatalogDir, catalog.LoadModeFailFast)
		if len(errs) > 0 {
			return nil, errs[0]
		}
		return result, nil
	}
	data, err := yaml.Marshal(&s.Catalog)
	if err != nil {
		return nil, err
	}
	return catalog.Decode(data, s.Name+".catalog.yaml")
}

func loadRecord(s *Scenario) (*pkm.Record, error) {
	if s.RecordFile != "" {
		return catalog.LoadRecord(s.RecordFile)
	}
	data, err := yaml.Marshal(&s.Record)
	if err != nil {
		return nil, err
	}
	return catalog.ParseRecord(data, s.Name+".record.yaml")
}

// findByKey resolves a gift key such as "gen6/0525". Keys are not unique
// when a catalog leaves card IDs unset; the first template wins.
func findByKey(cat *gift.Catalog, key string) (gift.Gift, bool) {
	for g := range cat.All() {
		if gift.Key(g) == key {
			return g, true
		}
	}
	return nil, false
}
