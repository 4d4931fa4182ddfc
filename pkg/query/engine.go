package query

import "context"

// Engine is an asynchronous query engine exposing submit/poll/fetch.
// Athena implements this. Future engines (Trino async, BigQuery) can too.
type Engine interface {
	// Submit starts an execution and returns its handle. Submission is
	// attempted exactly once; callers do not retry.
	Submit(ctx context.Context, req Request) (Handle, error)

	// Status fetches the current execution status for a handle.
	Status(ctx context.Context, h Handle) (Status, error)

	// Results fetches up to maxRows rows of a succeeded execution,
	// following engine pagination as needed. maxRows <= 0 means the
	// engine default.
	Results(ctx context.Context, h Handle, maxRows int) (*ResultSet, error)

	// Cancel requests the engine stop an in-flight execution.
	Cancel(ctx context.Context, h Handle) error

	// Close releases resources.
	Close() error
}
