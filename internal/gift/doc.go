// Package gift defines the distribution gift templates for generations 3
// through 7 and the per-generation catalog that holds them.
//
// Each generation is its own variant type (WC3, PCD, PGF, WC6, WC7). They
// share the read-only Gift surface and are dispatched by Generation(),
// never by reflection. The wildcard sentinels differ per generation and
// per field; they are declared next to the variant that uses them and are
// deliberately not shared.
//
// Templates decoded from JSON start from their wildcard values, so a
// catalog file only has to name the fields an event actually fixes.
package gift
