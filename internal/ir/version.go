package ir

// Version constants stamped on stored identities.
const (
	// IRVersion is the canonical form version. Bump it together with the
	// domain suffixes in hash.go.
	IRVersion = "1"

	// EngineVersion is the giftcheck matcher version recorded with runs.
	EngineVersion = "0.1.0"
)
