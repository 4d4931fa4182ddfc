package query

import (
	"context"
	"errors"
)

// fakeEngine scripts engine responses for tests. Status values are consumed
// in order; the last one repeats once the script is exhausted.
type fakeEngine struct {
	handle    Handle
	submitErr error

	statuses  []Status
	statusErr error

	results    *ResultSet
	resultsErr error

	submitted   []Request
	statusCalls int
	cancelCalls int
	closed      bool
}

var errScriptEmpty = errors.New("fakeEngine: no scripted statuses")

func (f *fakeEngine) Submit(_ context.Context, req Request) (Handle, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return "", f.submitErr
	}
	if f.handle == "" {
		return "exec-1", nil
	}
	return f.handle, nil
}

func (f *fakeEngine) Status(_ context.Context, _ Handle) (Status, error) {
	if f.statusErr != nil {
		return Status{}, f.statusErr
	}
	if len(f.statuses) == 0 {
		return Status{}, errScriptEmpty
	}
	idx := f.statusCalls
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	f.statusCalls++
	return f.statuses[idx], nil
}

func (f *fakeEngine) Results(_ context.Context, _ Handle, _ int) (*ResultSet, error) {
	if f.resultsErr != nil {
		return nil, f.resultsErr
	}
	return f.results, nil
}

func (f *fakeEngine) Cancel(_ context.Context, _ Handle) error {
	f.cancelCalls++
	return nil
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

// Verify interface compliance.
var _ Engine = (*fakeEngine)(nil)
