package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/giftcheck/internal/ir"
)

// Snapshot is the golden form of a scenario run. Content hashes are left
// out so snapshots stay readable and survive changes to template fields.
type Snapshot struct {
	Scenario string  `json:"scenario"`
	RunID    string  `json:"run_id"`
	Matches  []Match `json:"matches"`
}

// MarshalSnapshot returns the canonical JSON of the run's snapshot.
func MarshalSnapshot(name string, result *Result) ([]byte, error) {
	v, err := ir.FromStruct(Snapshot{Scenario: name, RunID: result.RunID, Matches: result.Matches})
	if err != nil {
		return nil, err
	}
	return ir.MarshalCanonical(v)
}

// RunWithGolden executes a scenario and compares its yield sequence
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check Pass; a snapshot mismatch
// fails t through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
