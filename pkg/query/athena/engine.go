package athena

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/google/uuid"

	"github.com/txn2/mcp-athena/pkg/query"
)

// Engine implements query.Engine using the Athena submit/poll/fetch API.
// The engine holds no per-query state and is safe for concurrent use.
type Engine struct {
	api API
	cfg Config
}

// Submit starts a query execution. A fresh ClientRequestToken makes the
// single submission idempotent against SDK-level request replays.
func (e *Engine) Submit(ctx context.Context, req query.Request) (query.Handle, error) {
	in := &athena.StartQueryExecutionInput{
		QueryString:        aws.String(req.SQL),
		ClientRequestToken: aws.String(uuid.NewString()),
	}
	if req.Database != "" {
		in.QueryExecutionContext = &types.QueryExecutionContext{
			Database: aws.String(req.Database),
		}
	}
	if req.OutputLocation != "" {
		in.ResultConfiguration = &types.ResultConfiguration{
			OutputLocation: aws.String(req.OutputLocation),
		}
	}
	if e.cfg.Workgroup != "" {
		in.WorkGroup = aws.String(e.cfg.Workgroup)
	}

	out, err := e.api.StartQueryExecution(ctx, in)
	if err != nil {
		return "", fmt.Errorf("starting query execution: %w", err)
	}
	if out.QueryExecutionId == nil {
		return "", fmt.Errorf("athena returned no query execution id")
	}

	return query.Handle(*out.QueryExecutionId), nil
}

// Status fetches the current execution state.
func (e *Engine) Status(ctx context.Context, h query.Handle) (query.Status, error) {
	out, err := e.api.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(string(h)),
	})
	if err != nil {
		return query.Status{}, fmt.Errorf("getting query execution: %w", err)
	}
	if out.QueryExecution == nil || out.QueryExecution.Status == nil {
		return query.Status{}, fmt.Errorf("athena returned no status for query %s", h)
	}

	st := out.QueryExecution.Status
	return query.Status{
		State:  mapState(st.State),
		Reason: aws.ToString(st.StateChangeReason),
	}, nil
}

// mapState converts an Athena execution state to the engine-agnostic one.
func mapState(s types.QueryExecutionState) query.State {
	switch s {
	case types.QueryExecutionStateQueued:
		return query.StateQueued
	case types.QueryExecutionStateRunning:
		return query.StateRunning
	case types.QueryExecutionStateSucceeded:
		return query.StateSucceeded
	case types.QueryExecutionStateFailed:
		return query.StateFailed
	case types.QueryExecutionStateCancelled:
		return query.StateCancelled
	default:
		return query.State(s)
	}
}

// Results fetches up to maxRows rows, following NextToken pagination. The
// header row counts toward the limit. Truncated is set when the engine had
// more rows than were fetched.
func (e *Engine) Results(ctx context.Context, h query.Handle, maxRows int) (*query.ResultSet, error) {
	if maxRows <= 0 {
		maxRows = e.cfg.MaxFetchRows
	}

	rs := &query.ResultSet{}
	var nextToken *string

	for {
		out, err := e.api.GetQueryResults(ctx, &athena.GetQueryResultsInput{
			QueryExecutionId: aws.String(string(h)),
			MaxResults:       aws.Int32(e.cfg.FetchPageSize),
			NextToken:        nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("getting query results: %w", err)
		}
		if out.ResultSet == nil {
			break
		}

		for _, row := range out.ResultSet.Rows {
			if len(rs.Rows) >= maxRows {
				rs.Truncated = true
				return rs, nil
			}
			rs.Rows = append(rs.Rows, convertRow(row))
		}

		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}

	return rs, nil
}

// convertRow flattens an Athena row into nullable string cells.
func convertRow(row types.Row) []*string {
	cells := make([]*string, len(row.Data))
	for i, d := range row.Data {
		cells[i] = d.VarCharValue
	}
	return cells
}

// Cancel stops an in-flight execution.
func (e *Engine) Cancel(ctx context.Context, h query.Handle) error {
	_, err := e.api.StopQueryExecution(ctx, &athena.StopQueryExecutionInput{
		QueryExecutionId: aws.String(string(h)),
	})
	if err != nil {
		return fmt.Errorf("stopping query execution: %w", err)
	}
	return nil
}

// Close releases resources. The SDK client holds no connections to close.
func (*Engine) Close() error {
	return nil
}

// Verify interface compliance.
var _ query.Engine = (*Engine)(nil)
