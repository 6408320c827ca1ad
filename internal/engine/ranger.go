package engine

import (
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

// SpeciesManaphy is the species of the Pokémon Ranger egg.
const SpeciesManaphy = 490

// IsRangerManaphy reports whether rec is the Manaphy egg sent from
// Pokémon Ranger, which was distributed without any wonder card.
//
// A hatched record keeps the Ranger egg location, or the link trade
// location if the egg was traded first. An unhatched egg still carries the
// Ranger location with an empty or link-trade met location.
//
// Only locations are checked. Any hatched link-trade egg takes this path,
// whatever its species.
func IsRangerManaphy(rec *pkm.Record) bool {
	egg := rec.EggLocation
	if !rec.IsEgg {
		return egg == gift.LocationTradedEgg4 || egg == gift.LocationRanger4
	}
	if egg != gift.LocationRanger4 {
		return false
	}
	met := rec.MetLocation
	return met == gift.LocationTradedEgg4 || met == 0
}

// rangerManaphy synthesizes the template for the Ranger egg. A new value
// is built per call so callers never share it. Explain compares templates
// against it by value.
func rangerManaphy() *gift.PCD {
	return &gift.PCD{
		Header: gift.Header{
			Title:   "Manaphy Egg (Pokémon Ranger)",
			Species: SpeciesManaphy,
			IsEgg:   true,
		},
		GiftType: gift.GiftTypeManaphyEgg,
		OTGender: gift.AnyOTGender4,
		Gender:   gift.AnyGender4,
	}
}
