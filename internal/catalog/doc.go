// Package catalog loads gift catalogs and creature records from disk.
//
// A catalog directory holds any mix of YAML (.yaml, .yml), JSON (.json)
// and CUE (.cue) documents. Every document has the same shape:
//
//	gen3: [...]        # WC3 templates
//	gen4: [...]        # PCD templates
//	gen5: [...]        # PGF templates
//	gen6: [...]        # WC6 templates
//	gen7: [...]        # WC7 templates
//	evolutions: [...]  # pre-evolution edges
//
// Each document is unified with an embedded CUE schema before it is
// decoded, then decoded strictly: unknown fields are errors. Fields a
// template omits take their generation's wildcard. YAML and JSON files are
// read in lexical order; the CUE files of the directory are evaluated
// together as one package, at the position of the first CUE file.
//
// Trainer names and titles are NFC normalized on load.
package catalog
