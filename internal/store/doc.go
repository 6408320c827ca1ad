// Package store provides SQLite-backed storage for imported gift catalogs
// and match-run history.
//
// The store holds:
//   - Gifts: template JSON in catalog order, keyed by generation and position
//   - Evolutions: pre-evolution edges in import order
//   - Match runs: one row per recorded match with the record and catalog hashes
//   - Match results: the ordered gifts a run produced, exact or deferred
//
// # Ordering
//
// Catalog reads return templates in import order so a catalog served from
// the database produces the same match order as the files it came from.
// Run queries order by seq ASC, id ASC COLLATE BINARY. seq is a logical
// clock assigned at write time; timestamps are never stored.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Gift IDs, record hashes and catalog hashes are computed by internal/ir
// using RFC 8785 canonical JSON and SHA-256 with domain separation.
package store
