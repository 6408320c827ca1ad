package engine

import (
	"iter"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

// Generation 6 cards that are always deferred when they match.
const (
	// Diancie was distributed without IV enforcement; the card records
	// that with IVUnenforced in the HP slot.
	cardDiancie = 525
	// Magmar was distributed both with and without the classic ribbon.
	cardMagmar = 504
)

func (e *Engine) matchGen6(rec *pkm.Record) iter.Seq[gift.Gift] {
	return func(yield func(gift.Gift) bool) {
		if e.catalog == nil || e.catalog.Gen6 == nil {
			return
		}
		chain := e.evolutions.PreEvolutions(rec, evolution.NoCeiling)
		emit(yield, e.logger, e.catalog.Gen6, chain, func(wc *gift.WC6) Verdict {
			return e.judgeWC6(rec, wc, chain)
		})
	}
}

func (e *Engine) judgeWC6(rec *pkm.Record, wc *gift.WC6, chain []evolution.DexLevel) Verdict {
	if r := e.matchWC6(rec, wc, chain); r != "" {
		return reject(r)
	}

	switch {
	case wc.CardID == cardDiancie && wc.IVs[gift.IVHP] == gift.IVUnenforced:
		return deferTo(ReasonUnenforcedIVs)
	case wc.CardID == cardMagmar && wc.RibbonClassic != rec.RibbonClassic:
		return deferTo(ReasonClassicRibbon)
	}
	return bySpecies(rec.Species, wc.Species)
}

// matchWC6 is the generation 6 predicate. A record with no egg location
// was never an egg, regardless of the template.
func (e *Engine) matchWC6(rec *pkm.Record, wc *gift.WC6, chain []evolution.DexLevel) Reason {
	if rec.EggLocation == 0 {
		// The card ID doubles as the secret ID of the distribution.
		if wc.CardID != rec.SID {
			return ReasonCardSID
		}
		if wc.TID != rec.TID {
			return ReasonTID
		}
		if wc.OTName != rec.OTName {
			return ReasonOTName
		}
		if wc.OTGender != rec.OTGender {
			return ReasonOTGender
		}
		if r := checkPIDPolicy(rec, wc.PIDType, wc.PID); r != "" {
			return r
		}
		if wc.OriginGame != pkm.VersionAny && wc.OriginGame != rec.Version {
			return ReasonOriginGame
		}
		if wc.EncryptionConstant != gift.AnyEC && wc.EncryptionConstant != rec.EncryptionConstant {
			return ReasonEC
		}
		if wc.Language != gift.AnyLanguage6 && wc.Language != rec.Language {
			return ReasonLanguage
		}
	}

	if wc.Form != rec.Form && !e.formMayDiffer(rec, chain) {
		return ReasonForm
	}

	if wc.IsEgg {
		if r := checkGiftEgg(rec, wc.EggLocation, gift.LocationTradedEgg6, wc.PIDType == gift.PIDFixed); r != "" {
			return r
		}
	} else {
		if wc.EggLocation != rec.EggLocation {
			return ReasonEggLocation
		}
		if wc.MetLocation != rec.MetLocation {
			return ReasonMetLocation
		}
	}

	if wc.Level != rec.MetLevel {
		return ReasonMetLevel
	}
	if wc.Ball != rec.Ball {
		return ReasonBall
	}
	if wc.OTGender < gift.AnyOTGender6 && wc.OTGender != rec.OTGender {
		return ReasonOTGender
	}
	if wc.Nature != gift.AnyNature && wc.Nature != rec.Nature {
		return ReasonNature
	}
	if wc.Gender != gift.AnyGender6 && wc.Gender != rec.Gender {
		return ReasonGender
	}
	if !rec.Contest.Covers(wc.Contest) {
		return ReasonContest
	}
	return ""
}

// checkPIDPolicy applies the generation 6 personality policy: a fixed
// PID must match exactly, the shiny and non-shiny policies constrain
// shininess, and a random PID is unconstrained.
func checkPIDPolicy(rec *pkm.Record, pidType int, pid uint32) Reason {
	switch pidType {
	case gift.PIDFixed:
		if rec.PID != pid {
			return ReasonPID
		}
	case gift.PIDShiny:
		if !rec.IsShiny() {
			return ReasonShiny
		}
	case gift.PIDNonShiny:
		if rec.IsShiny() {
			return ReasonShiny
		}
	}
	return ""
}
