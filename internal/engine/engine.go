package engine

import (
	"iter"
	"log/slog"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

//go:generate mockgen -destination=mock/mock_preevolver.go -package=enginemock github.com/roach88/giftcheck/internal/engine PreEvolver

// PreEvolver returns the species chain a record could have evolved
// through, current species first. maxSpecies bounds the species numbers
// returned; evolution.NoCeiling disables the bound.
type PreEvolver interface {
	PreEvolutions(rec *pkm.Record, maxSpecies int) []evolution.DexLevel
}

// FormPolicy reports whether species may show a form other than the one
// the record was obtained with.
type FormPolicy func(rec *pkm.Record, species int) bool

// ReceivablePolicy reports whether a generation 4 card restricted to games
// can be redeemed on version v.
type ReceivablePolicy func(games pkm.VersionSet, v pkm.Version) bool

// Engine matches creature records against a gift catalog.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	catalog       *gift.Catalog
	evolutions    PreEvolver
	canChangeForm FormPolicy
	receivable    ReceivablePolicy
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPreEvolver replaces the pre-evolution service.
func WithPreEvolver(p PreEvolver) Option {
	return func(e *Engine) { e.evolutions = p }
}

// WithFormPolicy replaces the form-changeability predicate.
func WithFormPolicy(f FormPolicy) Option {
	return func(e *Engine) { e.canChangeForm = f }
}

// WithReceivable replaces the generation 4 version-compatibility predicate.
func WithReceivable(r ReceivablePolicy) Option {
	return func(e *Engine) { e.receivable = r }
}

// WithLogger sets the logger used for per-candidate debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine over catalog. A nil catalog matches nothing.
//
// Defaults: an empty evolution tree (every record is its own chain),
// pkm.CanChangeForm, gift.Receivable and a discarding logger.
func New(catalog *gift.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:       catalog,
		evolutions:    evolution.NewTree(nil),
		canChangeForm: pkm.CanChangeForm,
		receivable:    gift.Receivable,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EligibleGifts returns the templates rec could have originated from.
// Exact matches come first in catalog order, then deferred matches in
// catalog order. The sequence is evaluated while it is ranged over.
func (e *Engine) EligibleGifts(rec *pkm.Record) iter.Seq[gift.Gift] {
	switch rec.OriginGeneration() {
	case 3:
		return e.matchGen3(rec)
	case 4:
		return e.matchGen4(rec)
	case 5:
		return e.matchGen5(rec)
	case 6:
		return e.matchGen6(rec)
	case 7:
		return e.matchGen7(rec)
	default:
		return func(func(gift.Gift) bool) {}
	}
}

// Explain classifies a single template against rec, applying the same
// pre-filters and predicates EligibleGifts would.
func (e *Engine) Explain(rec *pkm.Record, g gift.Gift) Verdict {
	if g.Generation() != rec.OriginGeneration() {
		return reject(ReasonGeneration)
	}
	// The Ranger path is decided before the species chain, as in matchGen4.
	if pcd, ok := g.(*gift.PCD); ok {
		if v, ok := gen4Precheck(rec, pcd); ok {
			return v
		}
	}

	maxSpecies := evolution.NoCeiling
	if g.Generation() == 3 {
		maxSpecies = evolution.MaxSpeciesGen3
	}
	chain := e.evolutions.PreEvolutions(rec, maxSpecies)
	if !inChain(chain, g.Info().Species) {
		return reject(ReasonSpecies)
	}

	switch wc := g.(type) {
	case *gift.WC3:
		return e.judgeWC3(rec, wc)
	case *gift.PCD:
		return e.judgePCD(rec, wc, chain)
	case *gift.PGF:
		return e.judgePGF(rec, wc, chain)
	case *gift.WC6:
		return e.judgeWC6(rec, wc, chain)
	case *gift.WC7:
		return e.judgeWC7(rec, wc, chain)
	default:
		return reject(ReasonGeneration)
	}
}

// emit runs the catalog pass shared by every matcher. Exact matches are
// yielded as they are found; deferred ones are buffered and yielded once
// the pass completes. It returns false if the consumer stopped early.
func emit[T gift.Gift](yield func(gift.Gift) bool, logger *slog.Logger, db []T, chain []evolution.DexLevel, judge func(T) Verdict) bool {
	var deferred []gift.Gift
	for _, g := range db {
		if !inChain(chain, g.Info().Species) {
			continue
		}

		v := judge(g)
		switch v.Outcome {
		case Exact:
			if !yield(g) {
				return false
			}
		case Deferred:
			logger.Debug("gift deferred", "gift", gift.Key(g), "reason", string(v.Reason))
			deferred = append(deferred, g)
		default:
			logger.Debug("gift rejected", "gift", gift.Key(g), "reason", string(v.Reason))
		}
	}

	for _, g := range deferred {
		if !yield(g) {
			return false
		}
	}
	return true
}

// inChain reports whether species appears anywhere in the chain.
func inChain(chain []evolution.DexLevel, species int) bool {
	for _, dl := range chain {
		if dl.Species == species {
			return true
		}
	}
	return false
}

// formMayDiffer reports whether any species in the chain allows the
// record's form to differ from the template's.
func (e *Engine) formMayDiffer(rec *pkm.Record, chain []evolution.DexLevel) bool {
	for _, dl := range chain {
		if e.canChangeForm(rec, dl.Species) {
			return true
		}
	}
	return false
}
