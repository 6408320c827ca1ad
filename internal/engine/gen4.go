package engine

import (
	"iter"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

func (e *Engine) matchGen4(rec *pkm.Record) iter.Seq[gift.Gift] {
	return func(yield func(gift.Gift) bool) {
		if e.catalog == nil || e.catalog.Gen4 == nil {
			return
		}
		if rec.IsEgg && rec.Format() != 4 {
			return
		}

		// The Ranger Manaphy egg has no card in any catalog.
		if IsRangerManaphy(rec) {
			if rec.Language != pkm.LanguageKorean {
				yield(rangerManaphy())
			}
			return
		}

		chain := e.evolutions.PreEvolutions(rec, evolution.NoCeiling)
		emit(yield, e.logger, e.catalog.Gen4, chain, func(pcd *gift.PCD) Verdict {
			return e.judgePCD(rec, pcd, chain)
		})
	}
}

// gen4Precheck applies the whole-generation filters of matchGen4 to a
// single template, for Explain. ok is false when the template should go on
// to the species and predicate checks.
//
// A Ranger record only ever gets the synthesized egg, so every catalog card
// is rejected for it.
func gen4Precheck(rec *pkm.Record, pcd *gift.PCD) (v Verdict, ok bool) {
	if rec.IsEgg && rec.Format() != 4 {
		return reject(ReasonTransferredEgg), true
	}
	if !IsRangerManaphy(rec) {
		return Verdict{}, false
	}
	if *pcd != *rangerManaphy() {
		return reject(ReasonRanger), true
	}
	if rec.Language == pkm.LanguageKorean {
		return reject(ReasonRangerKorean), true
	}
	return Verdict{Outcome: Exact}, true
}

func (e *Engine) judgePCD(rec *pkm.Record, pcd *gift.PCD, chain []evolution.DexLevel) Verdict {
	if r := e.matchPCD(rec, pcd, chain); r != "" {
		return reject(r)
	}
	if !e.receivable(pcd.Games, rec.Version) {
		return deferTo(ReasonNotReceivable)
	}
	return bySpecies(rec.Species, pcd.Species)
}

// matchPCD is the generation 4 predicate.
func (e *Engine) matchPCD(rec *pkm.Record, pcd *gift.PCD, chain []evolution.DexLevel) Reason {
	if !pcd.IsEgg {
		if pcd.TID != rec.TID {
			return ReasonTID
		}
		if pcd.SID != rec.SID {
			return ReasonSID
		}
		if pcd.OTName != rec.OTName {
			return ReasonOTName
		}
		if pcd.OTGender != rec.OTGender {
			return ReasonOTGender
		}
		if pcd.Language != gift.AnyLanguage4 && pcd.Language != rec.Language {
			return ReasonLanguage
		}

		if rec.Format() != 4 {
			// Met location after transfer belongs to the transfer check.
			if pcd.Level > rec.MetLevel {
				return ReasonLevel
			}
		} else {
			if pcd.EggLocation+gift.LocationOffset4 != rec.MetLocation {
				return ReasonMetLocation
			}
			if pcd.Level != rec.MetLevel {
				return ReasonMetLevel
			}
		}
	} else {
		if pcd.EggLocation+gift.LocationOffset4 != rec.EggLocation && rec.EggLocation != gift.LocationTradedEgg4 {
			return ReasonEggLocation
		}
		if pcd.Level != rec.MetLevel {
			return ReasonMetLevel
		}
		if rec.IsEgg && !rec.IsNative() {
			return ReasonTransferredEgg
		}
	}

	if pcd.Form != rec.Form && !e.formMayDiffer(rec, chain) {
		return ReasonForm
	}
	if pcd.Ball != rec.Ball {
		return ReasonBall
	}
	if pcd.OTGender < gift.AnyOTGender4 && pcd.OTGender != rec.OTGender {
		return ReasonOTGender
	}
	if pcd.PID == gift.PIDNonShiny4 && rec.IsShiny() {
		return ReasonShiny
	}
	if pcd.Gender != gift.AnyGender4 && pcd.Gender != rec.Gender {
		return ReasonGender
	}
	if !rec.Contest.Covers(pcd.Contest) {
		return ReasonContest
	}
	return ""
}
