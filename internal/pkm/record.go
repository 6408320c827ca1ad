package pkm

// Container is the stored data format a record currently lives in.
// A record moved forward to a newer game changes container; its origin
// Version does not.
type Container string

const (
	PK3 Container = "pk3"
	CK3 Container = "ck3" // Colosseum
	XK3 Container = "xk3" // XD: Gale of Darkness
	PK4 Container = "pk4"
	BK4 Container = "bk4" // Battle Revolution
	PK5 Container = "pk5"
	PK6 Container = "pk6"
	PK7 Container = "pk7"
)

var containerFormats = map[Container]int{
	PK3: 3,
	CK3: 3,
	XK3: 3,
	PK4: 4,
	BK4: 4,
	PK5: 5,
	PK6: 6,
	PK7: 7,
}

// Format returns the generation of the container, or 0 if unknown.
func (c Container) Format() int {
	return containerFormats[c]
}

// Valid reports whether c is a known container.
func (c Container) Valid() bool {
	_, ok := containerFormats[c]
	return ok
}

// Languages as stored in creature data.
const (
	LanguageJapanese = 1
	LanguageEnglish  = 2
	LanguageFrench   = 3
	LanguageItalian  = 4
	LanguageGerman   = 5
	LanguageSpanish  = 7
	LanguageKorean   = 8
)

// Genders as stored in creature data.
const (
	GenderMale       = 0
	GenderFemale     = 1
	GenderGenderless = 2
)

// Balls referenced by the catalogs and tests.
const (
	BallMaster  = 1
	BallUltra   = 2
	BallGreat   = 3
	BallPoke    = 4
	BallPremier = 12
	BallCherish = 16
)

// ContestStats are the six contest condition values.
type ContestStats struct {
	Cool   int `json:"cool"`
	Beauty int `json:"beauty"`
	Cute   int `json:"cute"`
	Smart  int `json:"smart"`
	Tough  int `json:"tough"`
	Sheen  int `json:"sheen"`
}

// Covers reports whether every stat in s is at least the matching floor.
// Equal values pass.
func (s ContestStats) Covers(floor ContestStats) bool {
	return floor.Cool <= s.Cool &&
		floor.Beauty <= s.Beauty &&
		floor.Cute <= s.Cute &&
		floor.Smart <= s.Smart &&
		floor.Tough <= s.Tough &&
		floor.Sheen <= s.Sheen
}

// Record is a concrete creature as stored by a game.
type Record struct {
	Species   int       `json:"species"`
	Form      int       `json:"form"`
	Container Container `json:"container"`
	Version   Version   `json:"version"`

	// Generation is the generation the creature originated in.
	// Zero means "derive from Version"; see OriginGeneration.
	Generation int `json:"generation,omitempty"`

	TID      int    `json:"tid"`
	SID      int    `json:"sid"`
	OTName   string `json:"ot_name"`
	OTGender int    `json:"ot_gender"`
	Language int    `json:"language"`

	PID                uint32 `json:"pid"`
	EncryptionConstant uint32 `json:"encryption_constant"`

	MetLocation int  `json:"met_location"`
	EggLocation int  `json:"egg_location"`
	MetLevel    int  `json:"met_level"`
	Level       int  `json:"level"`
	IsEgg       bool `json:"is_egg"`

	Ball    int          `json:"ball"`
	Nature  int          `json:"nature"`
	Gender  int          `json:"gender"`
	Contest ContestStats `json:"contest"`

	FatefulEncounter bool `json:"fateful_encounter"`
	RibbonClassic    bool `json:"ribbon_classic"`
}

// Format is the generation of the container the record currently lives in.
func (r *Record) Format() int {
	return r.Container.Format()
}

// OriginGeneration returns the generation the record originated in.
func (r *Record) OriginGeneration() int {
	if r.Generation != 0 {
		return r.Generation
	}
	return r.Version.Generation()
}

// IsNative reports whether the record is still in the format of the
// generation it originated in.
func (r *Record) IsNative() bool {
	return r.Format() == r.OriginGeneration()
}

// IsShiny derives shininess from the personality value and trainer IDs.
// Format 6 and later widened the threshold from 8 to 16.
func (r *Record) IsShiny() bool {
	xor := uint32(r.TID) ^ uint32(r.SID) ^ (r.PID >> 16) ^ (r.PID & 0xFFFF)
	if r.Format() >= 6 {
		return xor < 16
	}
	return xor < 8
}

// IsSunMoon reports whether the record originated in Sun or Moon.
func (r *Record) IsSunMoon() bool {
	return r.Version == Sun || r.Version == Moon
}

// TrainerPair packs the secret ID and trainer ID the way the games store
// them in a single 32-bit word.
func (r *Record) TrainerPair() uint32 {
	return uint32(r.SID)<<16 | uint32(r.TID)&0xFFFF
}
