package gift

import "github.com/roach88/giftcheck/internal/pkm"

// Generation 3 wildcards.
const (
	AnyID3       = -1 // TID, SID
	AnyLanguage3 = -1
	AnyOTGender3 = 3 // any value >= 3
)

// WC3 is a generation 3 event template. Generation 3 had no wonder card
// format, so CardID is zero unless a catalog assigns one.
type WC3 struct {
	Header

	// Versions restricts the origin cartridge; empty means any.
	Versions pkm.VersionSet `json:"versions"`

	TID      int     `json:"tid"`
	SID      int     `json:"sid"`
	OTName   *string `json:"ot_name,omitempty"` // nil is the wildcard
	OTGender int     `json:"ot_gender"`
	Language int     `json:"language"`

	Ball     int  `json:"ball"`
	Fateful  bool `json:"fateful"`
	Level    int  `json:"level"`
	MetLevel int  `json:"met_level"`
	Location int  `json:"location"`
}

func (*WC3) Generation() int { return 3 }
func (*WC3) sealed()         {}

// UnmarshalJSON seeds the generation 3 wildcards before decoding.
func (w *WC3) UnmarshalJSON(data []byte) error {
	type plain WC3
	p := plain{
		TID:      AnyID3,
		SID:      AnyID3,
		OTGender: AnyOTGender3,
		Language: AnyLanguage3,
	}
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	*w = WC3(p)
	return nil
}
