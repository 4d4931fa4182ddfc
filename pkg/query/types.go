// Package query provides abstractions for asynchronous query engines.
//
//nolint:revive // package contains related DTO types
package query

// State is the execution state reported by the query engine.
type State string

// Engine execution states.
const (
	StateQueued    State = "QUEUED"
	StateRunning   State = "RUNNING"
	StateSucceeded State = "SUCCEEDED"
	StateFailed    State = "FAILED"
	StateCancelled State = "CANCELLED"
)

// Terminal reports whether no further state transition can occur.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

// Request describes one query submission. Immutable once submitted.
type Request struct {
	// SQL is the statement text, passed to the engine verbatim.
	SQL string

	// Database is the logical database the statement runs against.
	Database string

	// OutputLocation is the durable location the engine writes its full
	// result set to. Results are read back through the engine's paginated
	// results API, never from this location directly.
	OutputLocation string
}

// Handle is an opaque identifier for one in-flight or completed execution.
// It is owned by the caller for the lifetime of one invocation and is not
// reused across invocations.
type Handle string

// Status is a point-in-time view of an execution.
type Status struct {
	State State

	// Reason carries the engine-provided explanation for FAILED states.
	// Empty for other states.
	Reason string
}

// ResultSet is the ordered rows of a completed query. Row 0 is the header
// row (column names); rows 1..N are data rows. A nil cell is a NULL value.
type ResultSet struct {
	Rows [][]*string

	// Truncated is set when the engine had more rows than the fetch limit.
	Truncated bool
}

// HeaderOnly reports whether the result has a header row but no data rows.
func (r *ResultSet) HeaderOnly() bool {
	return len(r.Rows) == 1
}

// DataRowCount returns the number of data rows (rows after the header).
func (r *ResultSet) DataRowCount() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return len(r.Rows) - 1
}
