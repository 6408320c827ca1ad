package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosDir = "../../testdata/scenarios"

const passingScenario = `
name: mew_exact
description: "A single exact match"
catalog:
  gen3:
    - {card_id: 151, title: Aura Mew, species: 151, ball: 4}
record: {species: 151, container: pk3, version: E, ball: 4}
expect:
  - {key: gen3/0151, outcome: exact}
`

const failingScenario = `
name: mew_wrong
description: "Expects a deferred match that is exact"
catalog:
  gen3:
    - {card_id: 151, title: Aura Mew, species: 151, ball: 4}
record: {species: 151, container: pk3, version: E, ball: 4}
expect:
  - {key: gen3/0151, outcome: deferred}
`

func writeScenarioFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestTest_RepositoryScenarios(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("text")), scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ wishmkr_jirachi")
	assert.Contains(t, out, "✓ pikachu_exact_before_deferred")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTest_Filter(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("json")), "--filter", "pikachu_*", scenariosDir)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Total)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "pikachu_exact_before_deferred", resp.Data.Scenarios[0].Name)
	assert.Equal(t, 2, resp.Data.Scenarios[0].Gifts)
}

func TestTest_FailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "a.yaml", passingScenario)
	writeScenarioFile(t, dir, "b.yaml", failingScenario)

	out, err := execute(t, NewTestCommand(testOptions("text")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✓ mew_exact")
	assert.Contains(t, out, "✗ mew_wrong")
	assert.Contains(t, out, "position 1: expected gen3/0151 (deferred), got gen3/0151 (exact)")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTest_FailingScenarioJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "b.yaml", failingScenario)

	out, err := execute(t, NewTestCommand(testOptions("json")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
}

func TestTest_LoadError(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "broken.yaml", "name: broken\n")

	out, err := execute(t, NewTestCommand(testOptions("text")), dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "load error")
}

func TestTest_GoldenUpdateThenCompare(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "mew.yaml", passingScenario)

	out, err := execute(t, NewTestCommand(testOptions("text")), "--update", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ mew_exact (golden updated)")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "mew.golden"))
	require.NoError(t, err)
	assert.Equal(t, `{"matches":[{"key":"gen3/0151","outcome":"exact","position":1,"title":"Aura Mew"}],"run_id":"run-0001","scenario":"mew_exact"}`, string(golden))

	_, err = execute(t, NewTestCommand(testOptions("text")), dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "mew.golden"), []byte("{}"), 0o644))
	out, err = execute(t, NewTestCommand(testOptions("text")), dir)
	require.Error(t, err)
	assert.Contains(t, out, "golden file mismatch")
}

func TestTest_NoScenarios(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("text")), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTest_MissingDirectory(t *testing.T) {
	_, err := execute(t, NewTestCommand(testOptions("text")), "testdata/no-such-dir")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTest_InvalidFilter(t *testing.T) {
	_, err := execute(t, NewTestCommand(testOptions("text")), "--filter", "[", scenariosDir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
