package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/testutil"
)

// createTestStore creates a new temp-dir store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with minimal required fields and the given
// results.
func createTestRun(id, recordHash string, results ...MatchResult) MatchRun {
	return MatchRun{
		ID:            id,
		RecordHash:    recordHash,
		Record:        testutil.Record(pkm.Ruby, 385),
		CatalogHash:   "test-catalog",
		EngineVersion: "0.1.0",
		IRVersion:     "1",
		Results:       results,
	}
}
