package query

import (
	"context"
	"fmt"
	"time"
)

const (
	// defaultWaitInterval is the pause between status polls.
	defaultWaitInterval = 1 * time.Second

	// defaultMaxAttempts bounds the number of status polls.
	defaultMaxAttempts = 30
)

// WaitOptions configures the status poll loop.
type WaitOptions struct {
	Interval    time.Duration
	MaxAttempts int
}

// withDefaults fills zero values with the package defaults.
func (o WaitOptions) withDefaults() WaitOptions {
	if o.Interval <= 0 {
		o.Interval = defaultWaitInterval
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	return o
}

// Wait polls the engine at a fixed interval until the execution reaches a
// terminal state, the attempt budget is exhausted, or ctx is cancelled.
//
// On budget exhaustion the returned error is a *TimeoutError carrying the
// last observed non-terminal state. On ctx cancellation the returned error
// wraps ctx.Err(). In both cases the last observed status is still returned
// so callers can report it.
func Wait(ctx context.Context, e Engine, h Handle, opts WaitOptions) (Status, error) {
	opts = opts.withDefaults()

	var last Status
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		st, err := e.Status(ctx, h)
		if err != nil {
			return last, fmt.Errorf("polling query %s: %w", h, err)
		}
		last = st

		if st.State.Terminal() {
			return st, nil
		}

		select {
		case <-ctx.Done():
			return last, fmt.Errorf("waiting for query %s: %w", h, ctx.Err())
		case <-time.After(opts.Interval):
		}
	}

	return last, &TimeoutError{Handle: h, LastState: last.State, Attempts: opts.MaxAttempts}
}
