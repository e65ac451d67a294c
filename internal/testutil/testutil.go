package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"simfinclient/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (any, error)
	KeyFunc   func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (any, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// Key implements the Fetcher interface
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "mock:key"
}

// NewMockFetcher creates a simple mock fetcher with predefined values
func NewMockFetcher(key string, value any, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (any, error) {
			return value, err
		},
		KeyFunc: func() string {
			return key
		},
	}
}

// Call is one request seen by a RecordingDoer.
type Call struct {
	Method string
	URI    string
	Query  map[string]string
}

// RecordingDoer records every request it is asked to send and answers with
// Response (JSON-encoded then decoded into the caller's target) or Err.
type RecordingDoer struct {
	Response any
	Err      error

	mu    sync.Mutex
	calls []Call
}

// Do implements simfin.Doer
func (d *RecordingDoer) Do(ctx context.Context, method, uri string, query map[string]string, out any) error {
	d.mu.Lock()
	d.calls = append(d.calls, Call{Method: method, URI: uri, Query: query})
	d.mu.Unlock()

	if d.Err != nil {
		return d.Err
	}
	if out == nil || d.Response == nil {
		return nil
	}
	b, err := json.Marshal(d.Response)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Calls returns a copy of the recorded requests.
func (d *RecordingDoer) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// LastCall returns the most recent request, or false if there was none.
func (d *RecordingDoer) LastCall() (Call, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		return Call{}, false
	}
	return d.calls[len(d.calls)-1], true
}
