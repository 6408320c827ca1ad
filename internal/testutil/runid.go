package testutil

import (
	"fmt"
	"sync"
)

// FixedRunIDGenerator returns predetermined match-run IDs so recorded
// history is byte-identical across test runs.
//
// IDs are returned in the order given. Once they are used up the generator
// continues with "run-0001", "run-0002", ... counting every call.
//
// Thread-safety: FixedRunIDGenerator is safe for concurrent use via internal mutex.
type FixedRunIDGenerator struct {
	mu  sync.Mutex
	ids []string
	n   int
}

// NewFixedRunIDGenerator creates a generator that returns ids in order.
func NewFixedRunIDGenerator(ids ...string) *FixedRunIDGenerator {
	return &FixedRunIDGenerator{ids: ids}
}

// Generate returns the next ID.
//
// Implements store.RunIDGenerator.
func (g *FixedRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	if g.n <= len(g.ids) {
		return g.ids[g.n-1]
	}
	return fmt.Sprintf("run-%04d", g.n)
}

// Reset rewinds the generator to its first ID.
func (g *FixedRunIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
