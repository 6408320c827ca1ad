package engine

import (
	"iter"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

const (
	speciesRockruff = 744
	speciesLycanroc = 745

	// Rockruff from the event card has form 1 and evolves into the Dusk
	// form of Lycanroc.
	formEventRockruff = 1
	formDuskLycanroc  = 2
)

const (
	// cardRockruff was split by version: Ultra Sun got Fire Fang and Ultra
	// Moon got Thunder Fang in the third move slot.
	cardRockruff    = 1624
	moveFireFang    = 424
	moveThunderFang = 422

	// cardAshGreninja was only redeemable in Sun and Moon.
	cardAshGreninja = 2046
)

// greninjaTrainerPair identifies the Greninja distribution whose PID
// varies and which can arrive at either of two met levels.
const greninjaTrainerPair = 0x79F57B49

func (e *Engine) matchGen7(rec *pkm.Record) iter.Seq[gift.Gift] {
	return func(yield func(gift.Gift) bool) {
		if e.catalog == nil || e.catalog.Gen7 == nil {
			return
		}
		chain := e.evolutions.PreEvolutions(rec, evolution.NoCeiling)
		emit(yield, e.logger, e.catalog.Gen7, chain, func(wc *gift.WC7) Verdict {
			return e.judgeWC7(rec, wc, chain)
		})
	}
}

func (e *Engine) judgeWC7(rec *pkm.Record, wc *gift.WC7, chain []evolution.DexLevel) Verdict {
	if r := e.matchWC7(rec, wc, chain); r != "" {
		return reject(r)
	}

	// The variant PID event skips the exact PID and species checks.
	if rec.TrainerPair() == greninjaTrainerPair {
		if rec.IsShiny() {
			return reject(ReasonVariantShiny)
		}
		return deferTo(ReasonVariantPIDEvent)
	}
	if wc.PIDType == gift.PIDFixed && wc.PID != rec.PID {
		return reject(ReasonPID)
	}
	return bySpecies(rec.Species, wc.Species)
}

// matchWC7 is the generation 7 predicate.
func (e *Engine) matchWC7(rec *pkm.Record, wc *gift.WC7, chain []evolution.DexLevel) Reason {
	if rec.EggLocation == 0 {
		// A wildcard trainer gender leaves the whole trainer block open.
		if wc.OTGender != gift.AnyOTGender7 {
			if wc.SID != rec.SID {
				return ReasonSID
			}
			if wc.TID != rec.TID {
				return ReasonTID
			}
			if wc.OTGender != rec.OTGender {
				return ReasonOTGender
			}
		}
		if wc.OTName != "" && wc.OTName != rec.OTName {
			return ReasonOTName
		}
		if wc.OriginGame != pkm.VersionAny && wc.OriginGame != rec.Version {
			return ReasonOriginGame
		}
		if wc.EncryptionConstant != gift.AnyEC && wc.EncryptionConstant != rec.EncryptionConstant {
			return ReasonEC
		}
		if wc.Language != gift.AnyLanguage7 && wc.Language != rec.Language {
			return ReasonLanguage
		}
	}

	if wc.Form != rec.Form && !e.formMayDiffer(rec, chain) && !isDuskRockruff(rec, wc) {
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

	if wc.MetLevel != rec.MetLevel {
		return ReasonMetLevel
	}
	if wc.Ball != rec.Ball {
		return ReasonBall
	}
	if wc.OTGender < gift.AnyOTGender7 && wc.OTGender != rec.OTGender {
		return ReasonOTGender
	}
	if wc.Nature != gift.AnyNature && wc.Nature != rec.Nature {
		return ReasonNature
	}
	if wc.Gender != gift.AnyGender7 && wc.Gender != rec.Gender {
		return ReasonGender
	}
	if !rec.Contest.Covers(wc.Contest) {
		return ReasonContest
	}

	if wc.PIDType == gift.PIDShiny && !rec.IsShiny() {
		return ReasonShiny
	}
	if wc.PIDType == gift.PIDNonShiny && rec.IsShiny() {
		return ReasonShiny
	}

	switch wc.CardID {
	case cardRockruff:
		if rec.Species == speciesLycanroc && rec.Form != formDuskLycanroc {
			return ReasonEventForm
		}
		switch rec.Version {
		case pkm.UltraSun:
			if wc.Moves[2] != moveFireFang {
				return ReasonEventVersion
			}
		case pkm.UltraMoon:
			if wc.Moves[2] != moveThunderFang {
				return ReasonEventVersion
			}
		default:
			return ReasonEventVersion
		}
	case cardAshGreninja:
		if !rec.IsSunMoon() {
			return ReasonEventVersion
		}
	}
	return ""
}

// isDuskRockruff reports whether rec is a Dusk Lycanroc evolved from the
// form 1 event Rockruff.
func isDuskRockruff(rec *pkm.Record, wc *gift.WC7) bool {
	return wc.Species == speciesRockruff && wc.Form == formEventRockruff &&
		rec.Species == speciesLycanroc && rec.Form == formDuskLycanroc
}
