package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioDir holds the canonical scenarios. They double as examples of
// the scenario format and as regression fixtures.
const scenarioDir = "../../testdata/scenarios"

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(scenarioDir)
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, s)
			require.NoError(t, err, "scenario execution failed")
			require.NotNil(t, result)

			assert.True(t, result.Pass, "scenario should pass: errors=%v", result.Errors)
			assert.Empty(t, result.Errors)

			t.Logf("Scenario %s: %d gift(s)", s.Name, len(result.Matches))
		})
	}
}

// TestScenariosReplay checks that running a scenario twice produces
// identical sequences and hashes.
func TestScenariosReplay(t *testing.T) {
	scenarios, err := LoadScenarios(scenarioDir)
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			first, err := Run(s)
			require.NoError(t, err)
			second, err := Run(s)
			require.NoError(t, err)

			assert.Equal(t, first.Matches, second.Matches)
			assert.Equal(t, first.RecordHash, second.RecordHash)
			assert.Equal(t, first.CatalogHash, second.CatalogHash)
		})
	}
}

func TestScenarios_SharedCatalogHash(t *testing.T) {
	jirachi, err := LoadScenario(scenarioDir + "/wishmkr_jirachi.yaml")
	require.NoError(t, err)
	diancie, err := LoadScenario(scenarioDir + "/diancie_unenforced_ivs.yaml")
	require.NoError(t, err)

	a, err := Run(jirachi)
	require.NoError(t, err)
	b, err := Run(diancie)
	require.NoError(t, err)

	assert.Equal(t, a.CatalogHash, b.CatalogHash, "same catalog directory")
	assert.NotEqual(t, a.RecordHash, b.RecordHash)
}
