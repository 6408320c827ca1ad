// Package harness runs matching scenarios against the engine.
//
// A scenario pairs a catalog with a record and lists the complete yield
// sequence the engine must produce. Each run imports the catalog into a
// fresh in-memory store, matches from what the store reads back, records
// the match run, and then checks the sequence and any assertions.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	catalog_dir: ../catalogs        # or an inline catalog:
//	catalog:
//	  gen3:
//	    - {card_id: 1, title: Pichu Egg, species: 172, is_egg: true, ball: 4, location: 253}
//	  evolutions:
//	    - {species: 25, parent: 172}
//	record_file: pikachu.yaml       # or an inline record:
//	record:
//	  species: 25
//	  container: pk3
//	  version: S
//	run_id: run-0001
//	expect:
//	  - key: gen3/0001
//	    outcome: deferred
//	    reason: record evolved from the gift species
//	assertions:
//	  - type: verdict
//	    key: gen3/0003
//	    outcome: rejected
//	    reason: origin version
//	  - type: final_state
//	    table: match_results
//	    where: { run_id: run-0001, position: 1 }
//	    expect: { outcome: deferred }
//
// Paths are relative to the scenario file.
//
// # Assertion Types
//
//   - yielded: the key appears in the sequence, with outcome if given
//   - not_yielded: the key never appears
//   - count: the number of yielded gifts, narrowed to outcome if given
//   - verdict: Explain on a catalog template returns outcome and reason
//   - final_state: one row of match_runs or match_results has the expected columns
//
// # Golden Files
//
// RunWithGolden snapshots the sequence as canonical JSON under
// testdata/golden. Run IDs come from testutil.FixedRunIDGenerator so
// snapshots are byte-identical across runs.
package harness
