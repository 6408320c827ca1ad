package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_Exact(t *testing.T) {
	out, err := execute(t, NewExplainCommand(testOptions("text")),
		"--catalog", catalogDir, "--gen", "3", "--card", "0", jirachiPath)
	require.NoError(t, err)
	assert.Equal(t, "✓ gen3/0000 WISHMKR Jirachi: exact\n", out)
}

func TestExplain_Deferred(t *testing.T) {
	out, err := execute(t, NewExplainCommand(testOptions("json")),
		"--catalog", catalogDir, "--gen", "6", "--card", "525", dianciePath)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Key     string `json:"key"`
			Outcome string `json:"outcome"`
			Reason  string `json:"reason"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "gen6/0525", resp.Data.Key)
	assert.Equal(t, "deferred", resp.Data.Outcome)
	assert.Equal(t, "distribution did not enforce IVs", resp.Data.Reason)
}

func TestExplain_RejectedExitsOne(t *testing.T) {
	out, err := execute(t, NewExplainCommand(testOptions("text")),
		"--catalog", catalogDir, "--gen", "3", "--card", "0", pikachuPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ gen3/0000 WISHMKR Jirachi: rejected (species not in pre-evolution chain)")
}

func TestExplain_OtherGeneration(t *testing.T) {
	out, err := execute(t, NewExplainCommand(testOptions("text")),
		"--catalog", catalogDir, "--gen", "6", "--card", "525", jirachiPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "record originated in another generation")
}

func TestExplain_GiftNotFound(t *testing.T) {
	out, err := execute(t, NewExplainCommand(testOptions("text")),
		"--catalog", catalogDir, "--gen", "7", "--card", "1624", jirachiPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}

func TestExplain_RequiresFlags(t *testing.T) {
	_, err := execute(t, NewExplainCommand(testOptions("text")), "--catalog", catalogDir, jirachiPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
