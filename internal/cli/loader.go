package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/giftcheck/internal/catalog"
	"github.com/roach88/giftcheck/internal/engine"
	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/ir"
	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/store"
)

// SourceFlags select where a command reads its catalog from. A directory
// wins over a database when both are set.
type SourceFlags struct {
	Catalog  string
	Database string
}

// resolve fills unset flags from the environment.
func (s SourceFlags) resolve(opts *RootOptions) SourceFlags {
	cfg := opts.config()
	if s.Catalog == "" && s.Database == "" {
		s.Catalog = cfg.Catalog
	}
	if s.Database == "" {
		s.Database = cfg.DB
	}
	return s
}

// CatalogSource is a loaded catalog and the identity of what was loaded.
type CatalogSource struct {
	Catalog    *gift.Catalog
	Evolutions []evolution.Edge
	Hash       string
	Origin     string // directory or database path
}

// LoadSource loads the catalog selected by flags.
func LoadSource(ctx context.Context, flags SourceFlags, logger *slog.Logger) (*CatalogSource, error) {
	switch {
	case flags.Catalog != "":
		return loadSourceDir(flags.Catalog, logger)
	case flags.Database != "":
		return loadSourceDB(ctx, flags.Database, logger)
	default:
		return nil, NewExitError(ExitCommandError, "no catalog: pass --catalog <dir> or --db <path>")
	}
}

func loadSourceDir(dir string, logger *slog.Logger) (*CatalogSource, error) {
	result, errs := catalog.LoadDir(dir, catalog.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, WrapExitError(ExitCommandError, "failed to load catalog", errs[0])
	}

	hash, err := catalogHash(result.Catalog)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to hash catalog", err)
	}
	logger.Debug("catalog loaded", "dir", dir, "files", len(result.Files), "gifts", result.Catalog.Len(), "evolutions", len(result.Evolutions))

	return &CatalogSource{
		Catalog:    result.Catalog,
		Evolutions: result.Evolutions,
		Hash:       hash,
		Origin:     dir,
	}, nil
}

func loadSourceDB(ctx context.Context, path string, logger *slog.Logger) (*CatalogSource, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	cat, err := st.ReadCatalog(ctx)
	if errors.Is(err, store.ErrNoCatalog) {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("database %s has no catalog; run giftcheck import first", path), err)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read catalog", err)
	}
	edges, err := st.ReadEvolutions(ctx)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read evolutions", err)
	}
	hash, err := st.CatalogHash(ctx)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read catalog hash", err)
	}
	logger.Debug("catalog loaded", "db", path, "gifts", cat.Len(), "evolutions", len(edges))

	return &CatalogSource{Catalog: cat, Evolutions: edges, Hash: hash, Origin: path}, nil
}

// Engine builds a matching engine over the source.
func (s *CatalogSource) Engine(logger *slog.Logger) *engine.Engine {
	return engine.New(s.Catalog,
		engine.WithPreEvolver(evolution.NewTree(s.Evolutions)),
		engine.WithLogger(logger),
	)
}

// catalogHash hashes the ordered gift IDs of cat, the same value an
// import into the store records.
func catalogHash(cat *gift.Catalog) (string, error) {
	var ids []string
	for g := range cat.All() {
		id, err := ir.GiftID(g.Generation(), g)
		if err != nil {
			return "", fmt.Errorf("%s: %w", gift.Key(g), err)
		}
		ids = append(ids, id)
	}
	return ir.CatalogHash(ids), nil
}

// loadRecord reads the record argument of a command.
func loadRecord(path string) (*pkm.Record, error) {
	rec, err := catalog.LoadRecord(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load record", err)
	}
	return rec, nil
}
