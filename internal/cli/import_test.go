package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/giftcheck/internal/store"
	"github.com/roach88/giftcheck/internal/testutil"
)

func TestImport(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, NewImportCommand(testOptions("text")), "--db", db, catalogDir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Imported 3 gift(s) and 2 evolution edge(s) from 2 file(s)")
}

func TestImport_HashMatchesMatchOutput(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, NewImportCommand(testOptions("json")), "--db", db, catalogDir)
	require.NoError(t, err)
	var imported struct {
		Data ImportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &imported))

	out, err = execute(t, NewMatchCommand(testOptions("json")), "--catalog", catalogDir, jirachiPath)
	require.NoError(t, err)
	var matched jsonMatch
	require.NoError(t, json.Unmarshal([]byte(out), &matched))

	assert.Equal(t, imported.Data.CatalogHash, matched.Data.CatalogHash)
	assert.Equal(t, 3, imported.Data.Gifts)
}

func TestImport_RequiresDB(t *testing.T) {
	_, err := execute(t, NewImportCommand(testOptions("text")), catalogDir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no database")
}

func TestImport_InvalidCatalogLeavesDatabaseUntouched(t *testing.T) {
	db := tempDB(t)
	_, err := execute(t, NewImportCommand(testOptions("text")), "--db", db, catalogDir)
	require.NoError(t, err)

	_, err = execute(t, NewImportCommand(testOptions("text")), "--db", db, "testdata/bad_catalog")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := execute(t, NewMatchCommand(testOptions("text")), "--db", db, jirachiPath)
	require.NoError(t, err)
	assert.Contains(t, out, "WISHMKR Jirachi")
}

func TestHistory_RecordedRuns(t *testing.T) {
	db := tempDB(t)
	opts := testOptions("text")
	opts.RunIDs = testutil.NewFixedRunIDGenerator("run-a", "run-b", "run-c")

	_, err := execute(t, NewImportCommand(opts), "--db", db, catalogDir)
	require.NoError(t, err)

	for _, rec := range []string{jirachiPath, pikachuPath, jirachiPath} {
		out, err := execute(t, NewMatchCommand(opts), "--db", db, "--record-run", rec)
		require.NoError(t, err)
		assert.Contains(t, out, "Recorded run run-")
	}

	out, err := execute(t, NewHistoryCommand(opts), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "#1 run-a species 385 (R)")
	assert.Contains(t, out, "#2 run-b species 25 (S)")
	assert.Contains(t, out, "#3 run-c species 385 (R)")
	assert.Contains(t, out, "Pichu Egg")

	out, err = execute(t, NewHistoryCommand(testOptions("json")), "--db", db, "--record", jirachiPath)
	require.NoError(t, err)
	var resp struct {
		Data []store.MatchRun `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "run-a", resp.Data[0].ID)
	assert.Equal(t, "run-c", resp.Data[1].ID)
	require.Len(t, resp.Data[0].Results, 1)
	assert.Equal(t, "exact", resp.Data[0].Results[0].Outcome)
}

func TestHistory_Empty(t *testing.T) {
	out, err := execute(t, NewHistoryCommand(testOptions("text")), "--db", tempDB(t))
	require.NoError(t, err)
	assert.Equal(t, "No recorded runs\n", out)
}

func TestHistory_RequiresDB(t *testing.T) {
	_, err := execute(t, NewHistoryCommand(testOptions("text")))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
