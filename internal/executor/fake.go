package executor

import (
	"context"
	"sync"
)

// Call records one invocation seen by FakeRunner.
type Call struct {
	Name string
	Args []string
}

// FakeRunner is a Runner for tests. It returns Result (or Err) for every
// call and records what was asked of it.
type FakeRunner struct {
	Result *Result
	Err    error

	mu    sync.Mutex
	calls []Call
}

// Run records the call and returns the configured outcome.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if f.Result == nil {
		return &Result{Exited: true}, nil
	}
	return f.Result, nil
}

// Calls returns the invocations made so far.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
