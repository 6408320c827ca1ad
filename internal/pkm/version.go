package pkm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Version identifies an origin game cartridge.
// Values follow the game-wide numbering stored in creature data.
type Version int

const (
	VersionAny    Version = 0
	Sapphire      Version = 1
	Ruby          Version = 2
	Emerald       Version = 3
	FireRed       Version = 4
	LeafGreen     Version = 5
	HeartGold     Version = 7
	SoulSilver    Version = 8
	Diamond       Version = 10
	Pearl         Version = 11
	Platinum      Version = 12
	ColosseumXD   Version = 15
	White         Version = 20
	Black         Version = 21
	White2        Version = 22
	Black2        Version = 23
	X             Version = 24
	Y             Version = 25
	AlphaSapphire Version = 26
	OmegaRuby     Version = 27
	Sun           Version = 30
	Moon          Version = 31
	UltraSun      Version = 32
	UltraMoon     Version = 33
)

var versionNames = map[Version]string{
	Sapphire:      "S",
	Ruby:          "R",
	Emerald:       "E",
	FireRed:       "FR",
	LeafGreen:     "LG",
	HeartGold:     "HG",
	SoulSilver:    "SS",
	Diamond:       "D",
	Pearl:         "P",
	Platinum:      "Pt",
	ColosseumXD:   "CXD",
	White:         "W",
	Black:         "B",
	White2:        "W2",
	Black2:        "B2",
	X:             "X",
	Y:             "Y",
	AlphaSapphire: "AS",
	OmegaRuby:     "OR",
	Sun:           "SN",
	Moon:          "MN",
	UltraSun:      "US",
	UltraMoon:     "UM",
}

// suggestDistance is the largest edit distance still offered as a suggestion.
const suggestDistance = 2

// String returns the short cartridge code, or the number for unknown values.
func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// Known reports whether v is a cartridge this package knows about.
func (v Version) Known() bool {
	_, ok := versionNames[v]
	return ok
}

// Generation returns the hardware generation the version belongs to,
// or 0 for unknown versions.
func (v Version) Generation() int {
	switch {
	case v >= Sapphire && v <= LeafGreen, v == ColosseumXD:
		return 3
	case v == HeartGold, v == SoulSilver, v >= Diamond && v <= Platinum:
		return 4
	case v >= White && v <= Black2:
		return 5
	case v >= X && v <= OmegaRuby:
		return 6
	case v >= Sun && v <= UltraMoon:
		return 7
	default:
		return 0
	}
}

// ErrUnknownVersion is wrapped by every ParseVersion failure.
var ErrUnknownVersion = errors.New("unknown version")

// ParseVersion accepts either a version number or a short cartridge code
// (case-insensitive). Unknown codes produce an error carrying the closest
// known code when one is near enough.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		v := Version(n)
		if v != VersionAny && !v.Known() {
			return 0, fmt.Errorf("%w number %d", ErrUnknownVersion, n)
		}
		return v, nil
	}

	for v, name := range versionNames {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}

	if suggestion := closestVersionName(s); suggestion != "" {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownVersion, s, suggestion)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVersion, s)
}

// closestVersionName returns the known code nearest to s by edit distance.
// Ties resolve alphabetically so the suggestion is stable.
func closestVersionName(s string) string {
	names := make([]string, 0, len(versionNames))
	for _, name := range versionNames {
		names = append(names, name)
	}
	slices.Sort(names)

	best, bestDist := "", suggestDistance+1
	for _, name := range names {
		dist := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(name))
		if dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}

// MarshalJSON encodes the version as its number.
func (v Version) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(v))), nil
}

// UnmarshalJSON accepts a number or a short cartridge code.
func (v *Version) UnmarshalJSON(data []byte) error {
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	parsed, err := ParseVersion(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// VersionSet is a bitmask of versions. The zero set is the wildcard:
// it places no constraint on the origin version.
type VersionSet uint64

// NewVersionSet builds a set containing the given versions.
func NewVersionSet(vs ...Version) VersionSet {
	var set VersionSet
	for _, v := range vs {
		if v == VersionAny {
			continue
		}
		set |= 1 << uint(v)
	}
	return set
}

// IsAny reports whether the set is the wildcard.
func (s VersionSet) IsAny() bool {
	return s == 0
}

// Contains reports whether v is a member of the set.
// The wildcard set contains nothing; callers check IsAny first.
func (s VersionSet) Contains(v Version) bool {
	if v < 0 || v > 63 {
		return false
	}
	return s&(1<<uint(v)) != 0
}

// Versions lists the members in ascending order.
func (s VersionSet) Versions() []Version {
	out := make([]Version, 0, bits.OnesCount64(uint64(s)))
	for v := Version(0); v < 64; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s VersionSet) String() string {
	if s.IsAny() {
		return "any"
	}
	names := make([]string, 0, 4)
	for _, v := range s.Versions() {
		names = append(names, v.String())
	}
	return strings.Join(names, "/")
}

// MarshalJSON encodes the set as an ascending array of version numbers.
func (s VersionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Versions())
}

// UnmarshalJSON accepts an array of versions (numbers or codes).
func (s *VersionSet) UnmarshalJSON(data []byte) error {
	var vs []Version
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("version set: %w", err)
	}
	*s = NewVersionSet(vs...)
	return nil
}
