package gift

import "github.com/roach88/giftcheck/internal/pkm"

// PID policies shared by the generation 6 and 7 card formats.
const (
	PIDFixed    = 0
	PIDRandom   = 1
	PIDShiny    = 2
	PIDNonShiny = 3
)

// Generation 6 wildcards and encodings.
const (
	AnyOTGender6 = 3
	AnyGender6   = 3
	AnyLanguage6 = 0
	AnyEC        = 0

	// LocationTradedEgg6 is the egg location of an egg received by trade.
	// Generation 7 kept the same value.
	LocationTradedEgg6 = 30002

	// IVUnenforced marks an IV slot the distribution never enforced.
	IVUnenforced = 0xFE
)

// Stat slots in WC6.IVs.
const (
	IVHP = iota
	IVAtk
	IVDef
	IVSpe
	IVSpA
	IVSpD
)

// WC6 is a generation 6 wonder card. The card format has no secret ID
// field; the card ID occupies that comparison.
type WC6 struct {
	Header

	TID      int    `json:"tid"`
	OTName   string `json:"ot_name"`
	OTGender int    `json:"ot_gender"`
	Language int    `json:"language"`

	PID                uint32      `json:"pid"`
	PIDType            int         `json:"pid_type"`
	OriginGame         pkm.Version `json:"origin_game"`
	EncryptionConstant uint32      `json:"encryption_constant"`

	EggLocation int `json:"egg_location"`
	MetLocation int `json:"met_location"`
	Level       int `json:"level"`

	Ball    int              `json:"ball"`
	Nature  int              `json:"nature"`
	Gender  int              `json:"gender"`
	Contest pkm.ContestStats `json:"contest"`

	IVs           [6]int `json:"ivs"`
	RibbonClassic bool   `json:"ribbon_classic"`
}

func (*WC6) Generation() int { return 6 }
func (*WC6) sealed()         {}

// UnmarshalJSON seeds the generation 6 wildcards before decoding.
func (w *WC6) UnmarshalJSON(data []byte) error {
	type plain WC6
	p := plain{
		OTGender: AnyOTGender6,
		PIDType:  PIDRandom,
		Nature:   AnyNature,
		Gender:   AnyGender6,
	}
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	*w = WC6(p)
	return nil
}
