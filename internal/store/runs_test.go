package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/giftcheck/internal/testutil"
)

func TestWriteMatchRun_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := createTestRun("run-1", "rec-a",
		MatchResult{GiftID: "g1", Generation: 3, CardID: 0, Title: "WISHMKR Jirachi", Outcome: "exact"},
		MatchResult{GiftID: "g2", Generation: 3, CardID: 0, Title: "Pichu Egg", Outcome: "deferred"},
	)
	seq, err := s.WriteMatchRun(ctx, run)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	got, err := s.ReadMatchRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Seq)
	assert.Equal(t, run.Record, got.Record)
	assert.Equal(t, "test-catalog", got.CatalogHash)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 0, got.Results[0].Position)
	assert.Equal(t, "exact", got.Results[0].Outcome)
	assert.Equal(t, 1, got.Results[1].Position)
	assert.Equal(t, "Pichu Egg", got.Results[1].Title)
}

func TestWriteMatchRun_AssignsIncreasingSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"c", "a", "b"} {
		seq, err := s.WriteMatchRun(ctx, createTestRun(id, "rec"))
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	runs, err := s.ReadMatchRuns(ctx, "")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "a", runs[1].ID)
	assert.Equal(t, "b", runs[2].ID)
}

func TestWriteMatchRun_DuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteMatchRun(ctx, createTestRun("run-1", "rec"))
	require.NoError(t, err)

	_, err = s.WriteMatchRun(ctx, createTestRun("run-1", "rec"))
	assert.Error(t, err)

	runs, err := s.ReadMatchRuns(ctx, "")
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestWriteMatchRun_BadOutcomeRollsBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteMatchRun(ctx, createTestRun("run-1", "rec", MatchResult{GiftID: "g", Outcome: "rejected"}))
	require.Error(t, err)

	_, err = s.ReadMatchRun(ctx, "run-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReadMatchRuns_FilterByRecord(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, run := range []MatchRun{
		createTestRun("r1", "rec-a"),
		createTestRun("r2", "rec-b"),
		createTestRun("r3", "rec-a", MatchResult{GiftID: "g", Generation: 6, CardID: 525, Outcome: "deferred"}),
	} {
		_, err := s.WriteMatchRun(ctx, run)
		require.NoError(t, err)
	}

	runs, err := s.ReadMatchRuns(ctx, "rec-a")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r1", runs[0].ID)
	assert.Empty(t, runs[0].Results)
	assert.Equal(t, "r3", runs[1].ID)
	require.Len(t, runs[1].Results, 1)
	assert.Equal(t, 525, runs[1].Results[0].CardID)

	none, err := s.ReadMatchRuns(ctx, "rec-z")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWriteMatchRun_GeneratedIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var gen RunIDGenerator = testutil.NewFixedRunIDGenerator("run-a", "run-b")
	for range 2 {
		_, err := s.WriteMatchRun(ctx, createTestRun(gen.Generate(), "rec"))
		require.NoError(t, err)
	}

	runs, err := s.ReadMatchRuns(ctx, "")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-a", runs[0].ID)
	assert.Equal(t, "run-b", runs[1].ID)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
}
