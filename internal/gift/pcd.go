package gift

import "github.com/roach88/giftcheck/internal/pkm"

// Generation 4 wildcards and encodings.
const (
	AnyLanguage4 = 0
	AnyOTGender4 = 3 // any value >= 3
	AnyGender4   = 3

	// PIDNonShiny4 in the PID field forbids a shiny result.
	PIDNonShiny4 = 1

	// LocationOffset4 converts a card's stored location to a met location.
	LocationOffset4 = 3000
	// LocationTradedEgg4 is the egg location of an egg received by trade.
	LocationTradedEgg4 = 2002
	// LocationRanger4 is the egg location of a Pokémon Ranger transfer.
	LocationRanger4 = 3001
)

// Gift payload types carried by a PCD.
const (
	GiftTypePokemon    = 1
	GiftTypeManaphyEgg = 7
)

// PCD is a generation 4 wonder card wrapping the delivered gift.
type PCD struct {
	Header

	// Games lists the cartridges able to receive the card; empty means any.
	Games    pkm.VersionSet `json:"games"`
	GiftType int            `json:"gift_type"`

	TID      int    `json:"tid"`
	SID      int    `json:"sid"`
	OTName   string `json:"ot_name"`
	OTGender int    `json:"ot_gender"`
	Language int    `json:"language"`

	// EggLocation holds the card location before LocationOffset4 is added.
	EggLocation int `json:"egg_location"`
	Level       int `json:"level"`

	Ball    int              `json:"ball"`
	PID     uint32           `json:"pid"`
	Gender  int              `json:"gender"`
	Contest pkm.ContestStats `json:"contest"`
}

func (*PCD) Generation() int { return 4 }
func (*PCD) sealed()         {}

// CanBeReceivedBy reports whether version v can redeem the card.
func (p *PCD) CanBeReceivedBy(v pkm.Version) bool {
	return Receivable(p.Games, v)
}

// UnmarshalJSON seeds the generation 4 wildcards before decoding.
func (p *PCD) UnmarshalJSON(data []byte) error {
	type plain PCD
	q := plain{
		GiftType: GiftTypePokemon,
		OTGender: AnyOTGender4,
		Gender:   AnyGender4,
	}
	if err := decodeStrict(data, &q); err != nil {
		return err
	}
	*p = PCD(q)
	return nil
}
