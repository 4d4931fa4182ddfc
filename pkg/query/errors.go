package query

import "fmt"

// TimeoutError indicates the poll budget was exhausted before the execution
// reached a terminal state.
type TimeoutError struct {
	Handle    Handle
	LastState State
	Attempts  int
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("query %s did not reach a terminal state after %d attempts (last state %s)",
		e.Handle, e.Attempts, e.LastState)
}
