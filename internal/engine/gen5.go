package engine

import (
	"iter"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

func (e *Engine) matchGen5(rec *pkm.Record) iter.Seq[gift.Gift] {
	return func(yield func(gift.Gift) bool) {
		if e.catalog == nil || e.catalog.Gen5 == nil {
			return
		}
		chain := e.evolutions.PreEvolutions(rec, evolution.NoCeiling)
		emit(yield, e.logger, e.catalog.Gen5, chain, func(pgf *gift.PGF) Verdict {
			return e.judgePGF(rec, pgf, chain)
		})
	}
}

func (e *Engine) judgePGF(rec *pkm.Record, pgf *gift.PGF, chain []evolution.DexLevel) Verdict {
	if r := e.matchPGF(rec, pgf, chain); r != "" {
		return reject(r)
	}
	return bySpecies(rec.Species, pgf.Species)
}

// matchPGF is the generation 5 predicate. Locations are stored without
// an offset in this generation.
func (e *Engine) matchPGF(rec *pkm.Record, pgf *gift.PGF, chain []evolution.DexLevel) Reason {
	if !pgf.IsEgg {
		if pgf.SID != rec.SID {
			return ReasonSID
		}
		if pgf.TID != rec.TID {
			return ReasonTID
		}
		if pgf.OTName != rec.OTName {
			return ReasonOTName
		}
		if pgf.OTGender < gift.AnyOTGender5 && pgf.OTGender != rec.OTGender {
			return ReasonOTGender
		}
		if pgf.PID != 0 && pgf.PID != rec.PID {
			return ReasonPID
		}
		if pgf.PIDType == gift.PIDNonShiny5 && rec.IsShiny() {
			return ReasonShiny
		}
		if pgf.PIDType == gift.PIDShiny5 && !rec.IsShiny() {
			return ReasonShiny
		}
		if pgf.OriginGame != pkm.VersionAny && pgf.OriginGame != rec.Version {
			return ReasonOriginGame
		}
		if pgf.Language != gift.AnyLanguage5 && pgf.Language != rec.Language {
			return ReasonLanguage
		}
		if pgf.EggLocation != rec.EggLocation {
			return ReasonEggLocation
		}
		if pgf.MetLocation != rec.MetLocation {
			return ReasonMetLocation
		}
	} else {
		if r := checkGiftEgg(rec, pgf.EggLocation, gift.LocationTradedEgg5, pgf.PIDType == gift.PIDNonShiny5); r != "" {
			return r
		}
	}

	if pgf.Form != rec.Form && !e.formMayDiffer(rec, chain) {
		return ReasonForm
	}
	if pgf.Level != rec.MetLevel {
		return ReasonMetLevel
	}
	if pgf.Ball != rec.Ball {
		return ReasonBall
	}
	if pgf.Nature != gift.AnyNature && pgf.Nature != rec.Nature {
		return ReasonNature
	}
	if pgf.Gender != gift.AnyGender5 && pgf.Gender != rec.Gender {
		return ReasonGender
	}
	if !rec.Contest.Covers(pgf.Contest) {
		return ReasonContest
	}
	return ""
}

// checkGiftEgg applies the egg-template rules shared by generations 5
// to 7. A record whose egg location differs from the card must carry the
// link trade sentinel. An untraded egg from a non-shiny card cannot be
// shiny, and an unhatched egg cannot have left its generation.
func checkGiftEgg(rec *pkm.Record, eggLocation, tradedEgg int, nonShiny bool) Reason {
	if eggLocation != rec.EggLocation {
		if rec.EggLocation != tradedEgg {
			return ReasonEggLocation
		}
	} else if nonShiny && rec.IsShiny() {
		return ReasonShiny
	}
	if rec.IsEgg && !rec.IsNative() {
		return ReasonTransferredEgg
	}
	return ""
}
