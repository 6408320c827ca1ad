package harness

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/roach88/giftcheck/internal/engine"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
	"github.com/roach88/giftcheck/internal/store"
)

// validIdentifier matches valid SQL identifiers (table/column names).
// Identifiers cannot be bound as parameters, so they are checked instead.
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// AssertionError is returned when an assertion fails.
// It includes the yield sequence to help debug the failure.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Matches  []Match
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Matches != nil {
		fmt.Fprintf(&buf, "\nYielded:\n")
		for _, m := range e.Matches {
			fmt.Fprintf(&buf, "  [%d] %s %s\n", m.Position, m.Key, m.Outcome)
		}
	}
	return buf.String()
}

// assertYielded checks that key was yielded, with the given outcome if set.
func assertYielded(matches []Match, a Assertion) error {
	for _, m := range matches {
		if m.Key == a.Key && (a.Outcome == "" || m.Outcome.String() == a.Outcome) {
			return nil
		}
	}

	want := a.Key
	if a.Outcome != "" {
		want += " as " + a.Outcome
	}
	return &AssertionError{
		Type:     AssertYielded,
		Expected: want,
		Actual:   "not yielded",
		Matches:  matches,
	}
}

// assertNotYielded checks that key never appears in the sequence.
func assertNotYielded(result *Result, a Assertion) error {
	m, ok := result.find(a.Key)
	if !ok {
		return nil
	}
	return &AssertionError{
		Type:     AssertNotYielded,
		Expected: fmt.Sprintf("%s absent", a.Key),
		Actual:   fmt.Sprintf("yielded at position %d as %s", m.Position, m.Outcome),
		Matches:  result.Matches,
	}
}

// assertCount checks the number of yielded gifts, narrowed to one outcome
// if set.
func assertCount(matches []Match, a Assertion) error {
	count := 0
	for _, m := range matches {
		if a.Outcome == "" || m.Outcome.String() == a.Outcome {
			count++
		}
	}
	if count == a.Count {
		return nil
	}

	what := "gifts"
	if a.Outcome != "" {
		what = a.Outcome + " gifts"
	}
	return &AssertionError{
		Type:     AssertCount,
		Expected: fmt.Sprintf("%d %s", a.Count, what),
		Actual:   fmt.Sprintf("%d %s", count, what),
		Matches:  matches,
	}
}

// assertVerdict explains one catalog template against the record. Unlike
// the sequence assertions it can check why a template was rejected.
func assertVerdict(eng *engine.Engine, cat *gift.Catalog, rec *pkm.Record, a Assertion) error {
	g, ok := findByKey(cat, a.Key)
	if !ok {
		return fmt.Errorf("verdict: no template %s in catalog", a.Key)
	}

	v := eng.Explain(rec, g)
	if v.Outcome.String() != a.Outcome || (a.Reason != "" && string(v.Reason) != a.Reason) {
		return &AssertionError{
			Type:     AssertVerdict,
			Expected: fmt.Sprintf("%s %s %q", a.Key, a.Outcome, a.Reason),
			Actual:   fmt.Sprintf("%s %s %q", a.Key, v.Outcome, v.Reason),
		}
	}
	return nil
}

// assertFinalState checks one row of the recorded history. Values are
// bound as parameters; identifiers are validated against validIdentifier.
func assertFinalState(ctx context.Context, st *store.Store, a Assertion) error {
	if !validIdentifier.MatchString(a.Table) {
		return fmt.Errorf("invalid table name %q: must match pattern %s", a.Table, validIdentifier.String())
	}

	whereSQL, whereArgs, err := buildWhereClause(a.Where)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("SELECT * FROM %s", a.Table)
	if whereSQL != "" {
		query += " WHERE " + whereSQL
	}

	rows, err := st.Query(ctx, query, whereArgs...)
	if err != nil {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("query table %s", a.Table),
			Actual:   fmt.Sprintf("query error: %v", err),
		}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("get columns: %w", err)
	}

	if !rows.Next() {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("row in %s where %s", a.Table, formatWhereClause(a.Where)),
			Actual:   "row not found",
		}
	}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return fmt.Errorf("scan row: %w", err)
	}
	if rows.Next() {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("exactly one row in %s where %s", a.Table, formatWhereClause(a.Where)),
			Actual:   "multiple rows matched (assertion is ambiguous)",
		}
	}

	row := make(map[string]any, len(columns))
	for i, col := range columns {
		row[col] = values[i]
	}

	// Subset match: only the columns named in Expect are checked.
	for _, key := range sortedKeys(a.Expect) {
		actual, exists := row[key]
		if !exists {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("column %q to exist", key),
				Actual:   fmt.Sprintf("columns are %v", columns),
			}
		}
		if !stateValuesEqual(a.Expect[key], actual) {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("%s = %v (%T)", key, a.Expect[key], a.Expect[key]),
				Actual:   fmt.Sprintf("%s = %v (%T)", key, actual, actual),
			}
		}
	}
	return nil
}

// buildWhereClause constructs a parameterized WHERE clause. Keys are
// sorted so the generated SQL is deterministic.
func buildWhereClause(where map[string]any) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, nil
	}

	keys := sortedKeys(where)
	clauses := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		if !validIdentifier.MatchString(key) {
			return "", nil, fmt.Errorf("invalid column name %q in where clause: must match pattern %s", key, validIdentifier.String())
		}
		clauses = append(clauses, key+" = ?")
		args = append(args, where[key])
	}
	return strings.Join(clauses, " AND "), args, nil
}

// formatWhereClause creates a human-readable description of WHERE conditions.
func formatWhereClause(where map[string]any) string {
	if len(where) == 0 {
		return "(no conditions)"
	}
	parts := make([]string, 0, len(where))
	for _, k := range sortedKeys(where) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, where[k]))
	}
	return strings.Join(parts, " AND ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stateValuesEqual compares a YAML value against a SQLite column value.
// SQLite returns integers as int64 and text as string or []byte.
func stateValuesEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	if b, ok := actual.([]byte); ok {
		actual = string(b)
	}

	switch exp := expected.(type) {
	case string:
		s, ok := actual.(string)
		return ok && exp == s
	case int:
		n, ok := actual.(int64)
		return ok && int64(exp) == n
	case int64:
		n, ok := actual.(int64)
		return ok && exp == n
	case bool:
		if b, ok := actual.(bool); ok {
			return exp == b
		}
		n, ok := actual.(int64)
		return ok && exp == (n != 0)
	}
	return reflect.DeepEqual(expected, actual)
}

// AssertionContext provides what assertions need beyond the result.
type AssertionContext struct {
	Ctx     context.Context
	Store   *store.Store
	Engine  *engine.Engine
	Catalog *gift.Catalog
	Record  *pkm.Record
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, a := range assertions {
		var err error

		switch a.Type {
		case AssertYielded:
			err = assertYielded(result.Matches, a)
		case AssertNotYielded:
			err = assertNotYielded(result, a)
		case AssertCount:
			err = assertCount(result.Matches, a)
		case AssertVerdict:
			if actx == nil || actx.Engine == nil {
				err = fmt.Errorf("assertion[%d]: verdict requires an engine", i)
			} else {
				err = assertVerdict(actx.Engine, actx.Catalog, actx.Record, a)
			}
		case AssertFinalState:
			if actx == nil || actx.Store == nil {
				err = fmt.Errorf("assertion[%d]: final_state requires database context", i)
			} else {
				err = assertFinalState(actx.Ctx, actx.Store, a)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	return errors
}
