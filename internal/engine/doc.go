// Package engine decides which distribution gifts a creature record could
// have come from.
//
// ARCHITECTURE:
//
// Dispatch:
// EligibleGifts routes a record to the matcher of its origin generation
// (3 through 7). Any other generation yields an empty sequence.
//
// Matching Flow (per generation):
// 1. Query the pre-evolution service once for the record's species chain
// 2. Keep catalog templates whose species appears in the chain
// 3. Run the generation's predicate; a non-empty Reason rejects
// 4. Yield exact matches (same species, no documented exception) at once
// 5. Buffer everything else and yield it after the catalog pass
//
// The returned sequence is lazy: ranging over it evaluates the catalog,
// and breaking out stops evaluation. Every ranging is a fresh evaluation;
// the deferred buffer lives only for that pass.
//
// CRITICAL PATTERNS:
//
// Soundness: a template is yielded only if no immutable field contradicts
// the record. Completeness: a plausible template is never dropped; when in
// doubt it is deferred, not rejected.
//
// No Errors: an unmatched condition is exclusion from the sequence. The
// engine returns no errors and performs no writes, so concurrent calls
// with independent inputs are safe.
//
// Special Cases:
// Event-specific exceptions are keyed by card ID (or trainer ID pair)
// inside each generation's file, next to the rule they bend.
package engine
