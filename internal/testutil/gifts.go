package testutil

import (
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

// Builders return templates with every field the generation can wildcard
// already set to its wildcard, matching what the catalog decoder produces
// for omitted fields. Tests then pin the fields they care about.

// WC3 returns a wildcarded generation 3 template for species.
func WC3(species int) *gift.WC3 {
	return &gift.WC3{
		Header:   gift.Header{Species: species},
		TID:      gift.AnyID3,
		SID:      gift.AnyID3,
		OTGender: gift.AnyOTGender3,
		Language: gift.AnyLanguage3,
	}
}

// PCD returns a wildcarded generation 4 template for species.
func PCD(species int) *gift.PCD {
	return &gift.PCD{
		Header:   gift.Header{Species: species},
		GiftType: gift.GiftTypePokemon,
		OTGender: gift.AnyOTGender4,
		Gender:   gift.AnyGender4,
	}
}

// PGF returns a wildcarded generation 5 template for species.
func PGF(species int) *gift.PGF {
	return &gift.PGF{
		Header:   gift.Header{Species: species},
		OTGender: gift.AnyOTGender5,
		PIDType:  gift.PIDRandom5,
		Nature:   gift.AnyNature,
		Gender:   gift.AnyGender5,
	}
}

// WC6 returns a wildcarded generation 6 template for species.
func WC6(species int) *gift.WC6 {
	return &gift.WC6{
		Header:   gift.Header{Species: species},
		OTGender: gift.AnyOTGender6,
		PIDType:  gift.PIDRandom,
		Nature:   gift.AnyNature,
		Gender:   gift.AnyGender6,
	}
}

// WC7 returns a wildcarded generation 7 template for species.
func WC7(species int) *gift.WC7 {
	return &gift.WC7{
		Header:   gift.Header{Species: species},
		OTGender: gift.AnyOTGender7,
		PIDType:  gift.PIDRandom,
		Nature:   gift.AnyNature,
		Gender:   gift.AnyGender7,
	}
}

// Catalog builds a catalog holding gifts in the given order.
func Catalog(gifts ...gift.Gift) *gift.Catalog {
	c := &gift.Catalog{}
	for _, g := range gifts {
		c.Add(g)
	}
	return c
}

// NonShinyPID is not shiny for any trainer IDs used by the tests.
const NonShinyPID = 0x12345678

// Record returns a native English record of species from version v, stored
// in the container of v's generation.
func Record(v pkm.Version, species int) *pkm.Record {
	return &pkm.Record{
		Species:   species,
		Version:   v,
		Container: nativeContainer(v.Generation()),
		Language:  pkm.LanguageEnglish,
		PID:       NonShinyPID,
		Ball:      pkm.BallPoke,
	}
}

func nativeContainer(gen int) pkm.Container {
	switch gen {
	case 3:
		return pkm.PK3
	case 4:
		return pkm.PK4
	case 5:
		return pkm.PK5
	case 6:
		return pkm.PK6
	default:
		return pkm.PK7
	}
}
