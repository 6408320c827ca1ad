package harness

import "github.com/roach88/giftcheck/internal/engine"

// Match is one gift the engine yielded, in yield order.
// Hashes and store columns are kept out of snapshots.
type Match struct {
	Position   int            `json:"position"`
	Key        string         `json:"key"`
	GiftID     string         `json:"-"`
	Generation int            `json:"-"`
	CardID     int            `json:"-"`
	Title      string         `json:"title"`
	Outcome    engine.Outcome `json:"outcome"`
	Reason     engine.Reason  `json:"reason,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if the yield sequence and every assertion matched.
	Pass bool `json:"pass"`

	// Matches holds every yielded gift in order.
	Matches []Match `json:"matches"`

	// RunID is the ID the match run was recorded under.
	RunID string `json:"run_id"`

	// RecordHash and CatalogHash identify the inputs.
	RecordHash  string `json:"record_hash"`
	CatalogHash string `json:"catalog_hash"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Matches: []Match{},
		Errors:  []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddMatch appends m at the next position.
func (r *Result) AddMatch(m Match) {
	m.Position = len(r.Matches) + 1
	r.Matches = append(r.Matches, m)
}

// find returns the first match with key.
func (r *Result) find(key string) (Match, bool) {
	for _, m := range r.Matches {
		if m.Key == key {
			return m, true
		}
	}
	return Match{}, false
}
