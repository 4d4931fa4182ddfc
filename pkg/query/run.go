package query

import (
	"context"
	"fmt"
	"time"
)

// cancelGrace bounds the best-effort remote cancel after a local timeout.
const cancelGrace = 5 * time.Second

// RunOptions configures one submit/poll/fetch cycle.
type RunOptions struct {
	Wait    WaitOptions
	MaxRows int
}

// Outcome is the structured result of one completed cycle. FAILED and
// CANCELLED are normal outcomes carried in Status, not errors; Results is
// populated only for SUCCEEDED.
type Outcome struct {
	Handle  Handle
	Status  Status
	Results *ResultSet
}

// Run submits a query, waits for a terminal state, and fetches results on
// success. Submission is attempted exactly once. When the wait times out or
// ctx is cancelled, the remote execution is cancelled best-effort so
// abandoned queries do not keep consuming engine resources.
func Run(ctx context.Context, e Engine, req Request, opts RunOptions) (*Outcome, error) {
	h, err := e.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submitting query: %w", err)
	}

	st, err := Wait(ctx, e, h, opts.Wait)
	if err != nil {
		cancelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cancelGrace)
		defer cancel()
		_ = e.Cancel(cancelCtx, h)
		return nil, err
	}

	out := &Outcome{Handle: h, Status: st}

	if st.State == StateSucceeded {
		rs, err := e.Results(ctx, h, opts.MaxRows)
		if err != nil {
			return nil, fmt.Errorf("fetching results for query %s: %w", h, err)
		}
		out.Results = rs
	}

	return out, nil
}
