package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/giftcheck/internal/engine"
)

// Scenario is one matching case: a catalog, a record and the gifts the
// engine must yield for it, in order.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// CatalogDir is a catalog directory, relative to the scenario file.
	// Exactly one of CatalogDir and Catalog must be set.
	CatalogDir string `yaml:"catalog_dir,omitempty"`

	// Catalog is an inline catalog document in the catalog file format.
	Catalog yaml.Node `yaml:"catalog,omitempty"`

	// RecordFile is a record file, relative to the scenario file.
	// Exactly one of RecordFile and Record must be set.
	RecordFile string `yaml:"record_file,omitempty"`

	// Record is an inline record in the record file format.
	Record yaml.Node `yaml:"record,omitempty"`

	// RunID fixes the ID the match run is recorded under.
	// If empty, defaults to "run-0001".
	RunID string `yaml:"run_id,omitempty"`

	// Expect is the complete yield sequence. An empty list asserts that
	// nothing matches; omitting it is an error.
	Expect []ExpectedGift `yaml:"expect"`

	// Assertions are extra checks evaluated after the run.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// ExpectedGift is one position of the expected yield sequence.
type ExpectedGift struct {
	// Key is the gift key, e.g. "gen3/0002".
	Key string `yaml:"key"`

	// Outcome is "exact" or "deferred".
	Outcome string `yaml:"outcome"`

	// Title and Reason are checked only when set.
	Title  string `yaml:"title,omitempty"`
	Reason string `yaml:"reason,omitempty"`
}

// Assertion validates the run beyond its yield sequence.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Key is the gift key (used by yielded, not_yielded, verdict).
	Key string `yaml:"key,omitempty"`

	// Outcome narrows yielded and count; it is required by verdict.
	Outcome string `yaml:"outcome,omitempty"`

	// Reason is the expected verdict reason (used by verdict).
	Reason string `yaml:"reason,omitempty"`

	// Count is the expected number of yielded gifts (used by count).
	Count int `yaml:"count,omitempty"`

	// Table, Where and Expect query the recorded run (used by final_state).
	// Where must select exactly one row; Expect is a subset match.
	Table  string         `yaml:"table,omitempty"`
	Where  map[string]any `yaml:"where,omitempty"`
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertYielded    = "yielded"
	AssertNotYielded = "not_yielded"
	AssertCount      = "count"
	AssertVerdict    = "verdict"
	AssertFinalState = "final_state"
)

var outcomes = []string{engine.Exact.String(), engine.Deferred.String(), engine.Rejected.String()}

// LoadScenario reads and parses a scenario YAML file. Relative catalog
// and record paths are resolved against the scenario's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict fields catch typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	if scenario.CatalogDir != "" && !filepath.IsAbs(scenario.CatalogDir) {
		scenario.CatalogDir = filepath.Join(base, scenario.CatalogDir)
	}
	if scenario.RecordFile != "" && !filepath.IsAbs(scenario.RecordFile) {
		scenario.RecordFile = filepath.Join(base, scenario.RecordFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarios loads every .yaml scenario directly inside dir, in
// lexical order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string)
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("scenario name %q used by both %s and %s", s.Name, prev, p)
		}
		seen[s.Name] = p
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	hasCatalog := s.Catalog.Kind != 0
	switch {
	case s.CatalogDir == "" && !hasCatalog:
		return fmt.Errorf("one of catalog_dir or catalog is required")
	case s.CatalogDir != "" && hasCatalog:
		return fmt.Errorf("catalog_dir and catalog are mutually exclusive")
	case hasCatalog && s.Catalog.Kind != yaml.MappingNode:
		return fmt.Errorf("catalog must be a mapping")
	}

	hasRecord := s.Record.Kind != 0
	switch {
	case s.RecordFile == "" && !hasRecord:
		return fmt.Errorf("one of record_file or record is required")
	case s.RecordFile != "" && hasRecord:
		return fmt.Errorf("record_file and record are mutually exclusive")
	case hasRecord && s.Record.Kind != yaml.MappingNode:
		return fmt.Errorf("record must be a mapping")
	}

	if s.Expect == nil {
		return fmt.Errorf("expect is required (use [] when nothing matches)")
	}
	for i, e := range s.Expect {
		if e.Key == "" {
			return fmt.Errorf("expect[%d]: key is required", i)
		}
		if e.Outcome != engine.Exact.String() && e.Outcome != engine.Deferred.String() {
			return fmt.Errorf("expect[%d]: outcome must be exact or deferred, got %q", i, e.Outcome)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Outcome != "" && !slices.Contains(outcomes, a.Outcome) {
		return fmt.Errorf("assertions[%d]: unknown outcome %q", index, a.Outcome)
	}

	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertYielded, AssertNotYielded:
		if a.Key == "" {
			return fmt.Errorf("assertions[%d]: key is required for %s", index, a.Type)
		}
	case AssertCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertVerdict:
		if a.Key == "" || a.Outcome == "" {
			return fmt.Errorf("assertions[%d]: key and outcome are required for verdict", index)
		}
	case AssertFinalState:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
