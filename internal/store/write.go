package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
)

const metaCatalogHash = "catalog_hash"

// ImportCatalog replaces the stored catalog and evolution edges with cat
// and edges in a single transaction. Template order within each generation
// is preserved.
func (s *Store) ImportCatalog(ctx context.Context, cat *gift.Catalog, edges []evolution.Edge) (ImportSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("import catalog: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, table := range []string{"gifts", "catalog_generations", "evolutions"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: clear %s: %w", table, err)
		}
	}

	if cat == nil {
		cat = &gift.Catalog{}
	}
	for gen, loaded := range loadedGenerations(cat) {
		if !loaded {
			continue
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO catalog_generations (generation) VALUES (?)", gen); err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: generation %d: %w", gen, err)
		}
	}

	var ids []string
	positions := make(map[int]int)
	for g := range cat.All() {
		gen := g.Generation()
		info := g.Info()

		id, err := ir.GiftID(gen, g)
		if err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: %s: %w", gift.Key(g), err)
		}
		template, err := marshalTemplate(g)
		if err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: %s: %w", gift.Key(g), err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO gifts
			(generation, position, id, card_id, species, title, template)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, gen, positions[gen], id, info.CardID, info.Species, info.Title, template)
		if err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: %s: %w", gift.Key(g), err)
		}
		positions[gen]++
		ids = append(ids, id)
	}

	for i, e := range edges {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO evolutions (position, species, parent, min_level)
			VALUES (?, ?, ?, ?)
		`, i, e.Species, e.Parent, e.MinLevel)
		if err != nil {
			return ImportSummary{}, fmt.Errorf("import catalog: evolution %d: %w", i, err)
		}
	}

	hash := ir.CatalogHash(ids)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, metaCatalogHash, hash)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("import catalog: catalog hash: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("import catalog: commit: %w", err)
	}

	return ImportSummary{CatalogHash: hash, Gifts: len(ids), Evolutions: len(edges)}, nil
}

// loadedGenerations reports which generation slices of cat are non-nil.
func loadedGenerations(cat *gift.Catalog) map[int]bool {
	return map[int]bool{
		3: cat.Gen3 != nil,
		4: cat.Gen4 != nil,
		5: cat.Gen5 != nil,
		6: cat.Gen6 != nil,
		7: cat.Gen7 != nil,
	}
}

// WriteMatchRun records a run and its results. The run's Seq is assigned
// here as one past the highest recorded seq and returned.
//
// Returns an error if a run with the same ID already exists.
func (s *Store) WriteMatchRun(ctx context.Context, run MatchRun) (int64, error) {
	recordJSON, err := marshalRecord(run.Record)
	if err != nil {
		return 0, fmt.Errorf("write match run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write match run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM match_runs").Scan(&seq); err != nil {
		return 0, fmt.Errorf("write match run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO match_runs
		(id, seq, record_hash, record, catalog_hash, engine_version, ir_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		seq,
		run.RecordHash,
		recordJSON,
		run.CatalogHash,
		run.EngineVersion,
		run.IRVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("write match run: %w", err)
	}

	if err := insertResults(ctx, tx, run.ID, run.Results); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write match run: commit: %w", err)
	}
	return seq, nil
}

func insertResults(ctx context.Context, tx *sql.Tx, runID string, results []MatchResult) error {
	for i, r := range results {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO match_results
			(run_id, position, gift_id, generation, card_id, title, outcome)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, i, r.GiftID, r.Generation, r.CardID, r.Title, r.Outcome)
		if err != nil {
			return fmt.Errorf("write match run: result %d: %w", i, err)
		}
	}
	return nil
}
