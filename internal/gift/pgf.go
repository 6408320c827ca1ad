package gift

import "github.com/roach88/giftcheck/internal/pkm"

// Generation 5 wildcards and encodings.
const (
	AnyOTGender5 = 3 // any value >= 3
	AnyGender5   = 2
	AnyNature    = 0xFF
	AnyLanguage5 = 0

	PIDNonShiny5 = 0
	PIDRandom5   = 1
	PIDShiny5    = 2

	// LocationTradedEgg5 is the egg location of an egg received by trade.
	LocationTradedEgg5 = 30003
)

// PGF is a generation 5 wonder card.
type PGF struct {
	Header

	TID      int    `json:"tid"`
	SID      int    `json:"sid"`
	OTName   string `json:"ot_name"`
	OTGender int    `json:"ot_gender"`
	Language int    `json:"language"`

	PID        uint32      `json:"pid"` // zero leaves the PID unconstrained
	PIDType    int         `json:"pid_type"`
	OriginGame pkm.Version `json:"origin_game"`

	EggLocation int `json:"egg_location"`
	MetLocation int `json:"met_location"`
	Level       int `json:"level"`

	Ball    int              `json:"ball"`
	Nature  int              `json:"nature"`
	Gender  int              `json:"gender"`
	Contest pkm.ContestStats `json:"contest"`
}

func (*PGF) Generation() int { return 5 }
func (*PGF) sealed()         {}

// UnmarshalJSON seeds the generation 5 wildcards before decoding.
func (p *PGF) UnmarshalJSON(data []byte) error {
	type plain PGF
	q := plain{
		OTGender: AnyOTGender5,
		PIDType:  PIDRandom5,
		Nature:   AnyNature,
		Gender:   AnyGender5,
	}
	if err := decodeStrict(data, &q); err != nil {
		return err
	}
	*p = PGF(q)
	return nil
}
