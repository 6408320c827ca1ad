package gift

import "github.com/roach88/giftcheck/internal/pkm"

// Generation 7 wildcards.
const (
	// AnyOTGender7 suppresses the whole TID/SID/gender check, not only the
	// gender comparison.
	AnyOTGender7 = 3
	AnyGender7   = 3
	AnyLanguage7 = 0
)

// WC7 is a generation 7 wonder card.
type WC7 struct {
	Header

	TID      int    `json:"tid"`
	SID      int    `json:"sid"`
	OTName   string `json:"ot_name"` // empty skips the name check
	OTGender int    `json:"ot_gender"`
	Language int    `json:"language"`

	PID                uint32      `json:"pid"`
	PIDType            int         `json:"pid_type"`
	OriginGame         pkm.Version `json:"origin_game"`
	EncryptionConstant uint32      `json:"encryption_constant"`

	EggLocation int `json:"egg_location"`
	MetLocation int `json:"met_location"`
	MetLevel    int `json:"met_level"`

	Ball    int              `json:"ball"`
	Nature  int              `json:"nature"`
	Gender  int              `json:"gender"`
	Contest pkm.ContestStats `json:"contest"`

	Moves [4]int `json:"moves"`
}

func (*WC7) Generation() int { return 7 }
func (*WC7) sealed()         {}

// UnmarshalJSON seeds the generation 7 wildcards before decoding.
func (w *WC7) UnmarshalJSON(data []byte) error {
	type plain WC7
	p := plain{
		OTGender: AnyOTGender7,
		PIDType:  PIDRandom,
		Nature:   AnyNature,
		Gender:   AnyGender7,
	}
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	*w = WC7(p)
	return nil
}
