package engine

import (
	"iter"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

// xdFatefulLevel is the only gift level at which an XD record may carry a
// fateful flag that differs from its template; those gifts only get
// flagged on transfer.
const xdFatefulLevel = 20

func (e *Engine) matchGen3(rec *pkm.Record) iter.Seq[gift.Gift] {
	return func(yield func(gift.Gift) bool) {
		if e.catalog == nil || e.catalog.Gen3 == nil {
			return
		}
		chain := e.evolutions.PreEvolutions(rec, evolution.MaxSpeciesGen3)
		emit(yield, e.logger, e.catalog.Gen3, chain, func(wc *gift.WC3) Verdict {
			return e.judgeWC3(rec, wc)
		})
	}
}

func (e *Engine) judgeWC3(rec *pkm.Record, wc *gift.WC3) Verdict {
	if r := matchWC3(rec, wc); r != "" {
		return reject(r)
	}
	return bySpecies(rec.Species, wc.Species)
}

// matchWC3 is the generation 3 predicate.
func matchWC3(rec *pkm.Record, wc *gift.WC3) Reason {
	if !wc.Versions.IsAny() && !wc.Versions.Contains(rec.Version) {
		return ReasonVersion
	}

	// An egg hatched before the gift's trainer data could be confirmed
	// carries the hatcher's identity, not the template's.
	hatched := wc.IsEgg && !rec.IsEgg
	if !hatched {
		if wc.SID != gift.AnyID3 && wc.SID != rec.SID {
			return ReasonSID
		}
		if wc.TID != gift.AnyID3 && wc.TID != rec.TID {
			return ReasonTID
		}
		if wc.OTName != nil && *wc.OTName != rec.OTName {
			return ReasonOTName
		}
		if wc.OTGender < gift.AnyOTGender3 && wc.OTGender != rec.OTGender {
			return ReasonOTGender
		}
	}

	if wc.Language != gift.AnyLanguage3 && wc.Language != rec.Language {
		return ReasonLanguage
	}
	if wc.Ball != rec.Ball {
		return ReasonBall
	}
	if wc.Fateful != rec.FatefulEncounter {
		if wc.Level != xdFatefulLevel || rec.Container != pkm.XK3 {
			return ReasonFateful
		}
	}

	if rec.IsNative() {
		if wc.MetLevel != rec.MetLevel {
			return ReasonMetLevel
		}
		if wc.Location != rec.MetLocation && (!wc.IsEgg || rec.IsEgg) {
			return ReasonMetLocation
		}
		return ""
	}

	if rec.IsEgg {
		return ReasonTransferredEgg
	}
	if wc.Level > rec.MetLevel {
		return ReasonLevel
	}
	return ""
}
