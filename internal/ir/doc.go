// Package ir provides the canonical value representation used to give gift
// templates and creature records stable, content-addressed identities.
//
// Any JSON-encodable template or record can be lifted into an IRValue and
// serialized as RFC 8785 canonical JSON. The same value always produces the
// same bytes, and therefore the same hash, across runs and platforms.
//
// Key design constraints:
//   - NO float types anywhere - every number in the domain is an integer
//   - JSON null is dropped when lifting structs (nil means "wildcard")
//   - All strings are NFC normalized before hashing
//   - ir imports nothing internal
package ir
