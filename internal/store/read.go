package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
)

// CatalogHash returns the hash of the imported catalog.
// Returns ErrNoCatalog if nothing was imported.
func (s *Store) CatalogHash(ctx context.Context) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaCatalogHash).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoCatalog
	}
	if err != nil {
		return "", fmt.Errorf("read catalog hash: %w", err)
	}
	return hash, nil
}

// ReadCatalog rebuilds the imported catalog in import order. Generations
// that were loaded but empty come back as empty, non-nil slices.
// Returns ErrNoCatalog if nothing was imported.
func (s *Store) ReadCatalog(ctx context.Context) (*gift.Catalog, error) {
	if _, err := s.CatalogHash(ctx); err != nil {
		return nil, err
	}

	cat := &gift.Catalog{}
	if err := s.readGenerations(ctx, cat); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT generation, template
		FROM gifts
		ORDER BY generation ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query gifts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gen int
		var template string
		if err := rows.Scan(&gen, &template); err != nil {
			return nil, fmt.Errorf("scan gift: %w", err)
		}
		g, err := unmarshalTemplate(gen, template)
		if err != nil {
			return nil, err
		}
		cat.Add(g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gifts: %w", err)
	}

	return cat, nil
}

func (s *Store) readGenerations(ctx context.Context, cat *gift.Catalog) error {
	rows, err := s.db.QueryContext(ctx, "SELECT generation FROM catalog_generations ORDER BY generation ASC")
	if err != nil {
		return fmt.Errorf("query catalog generations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gen int
		if err := rows.Scan(&gen); err != nil {
			return fmt.Errorf("scan catalog generation: %w", err)
		}
		switch gen {
		case 3:
			cat.Gen3 = []*gift.WC3{}
		case 4:
			cat.Gen4 = []*gift.PCD{}
		case 5:
			cat.Gen5 = []*gift.PGF{}
		case 6:
			cat.Gen6 = []*gift.WC6{}
		case 7:
			cat.Gen7 = []*gift.WC7{}
		}
	}
	return rows.Err()
}

// ReadEvolutions returns the imported pre-evolution edges in import order.
//
// Returns empty slice (not nil) if no edges exist.
func (s *Store) ReadEvolutions(ctx context.Context) ([]evolution.Edge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT species, parent, min_level
		FROM evolutions
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query evolutions: %w", err)
	}
	defer rows.Close()

	edges := []evolution.Edge{}
	for rows.Next() {
		var e evolution.Edge
		if err := rows.Scan(&e.Species, &e.Parent, &e.MinLevel); err != nil {
			return nil, fmt.Errorf("scan evolution: %w", err)
		}
		edges = append(edges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evolutions: %w", err)
	}
	return edges, nil
}

// ReadMatchRun retrieves a single run and its results by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadMatchRun(ctx context.Context, id string) (MatchRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, record_hash, record, catalog_hash, engine_version, ir_version
		FROM match_runs
		WHERE id = ?
	`, id)

	run, err := scanMatchRun(row)
	if err != nil {
		return MatchRun{}, err
	}
	if run.Results, err = s.readResults(ctx, run.ID); err != nil {
		return MatchRun{}, err
	}
	return run, nil
}

// ReadMatchRuns returns recorded runs ordered by seq ASC, id ASC COLLATE
// BINARY. A non-empty recordHash restricts the result to runs of that
// record.
//
// Returns empty slice (not nil) if no runs exist.
func (s *Store) ReadMatchRuns(ctx context.Context, recordHash string) ([]MatchRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, record_hash, record, catalog_hash, engine_version, ir_version
		FROM match_runs
		WHERE ? = '' OR record_hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, recordHash, recordHash)
	if err != nil {
		return nil, fmt.Errorf("query match runs: %w", err)
	}

	runs := []MatchRun{}
	for rows.Next() {
		run, err := scanMatchRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate match runs: %w", err)
	}
	// Release the single connection before loading results.
	rows.Close()

	for i := range runs {
		if runs[i].Results, err = s.readResults(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) readResults(ctx context.Context, runID string) ([]MatchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, gift_id, generation, card_id, title, outcome
		FROM match_results
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query match results: %w", err)
	}
	defer rows.Close()

	results := []MatchResult{}
	for rows.Next() {
		var r MatchResult
		if err := rows.Scan(&r.Position, &r.GiftID, &r.Generation, &r.CardID, &r.Title, &r.Outcome); err != nil {
			return nil, fmt.Errorf("scan match result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate match results: %w", err)
	}
	return results, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatchRun(row scanner) (MatchRun, error) {
	var run MatchRun
	var recordJSON string
	err := row.Scan(
		&run.ID,
		&run.Seq,
		&run.RecordHash,
		&recordJSON,
		&run.CatalogHash,
		&run.EngineVersion,
		&run.IRVersion,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MatchRun{}, err
		}
		return MatchRun{}, fmt.Errorf("scan match run: %w", err)
	}

	if run.Record, err = unmarshalRecord(recordJSON); err != nil {
		return MatchRun{}, err
	}
	return run, nil
}
