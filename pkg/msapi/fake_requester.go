package msapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

// FakeResponse is what FakeRequester answers for a route. If Wait is set the
// response is held back until Wait is closed or the request context ends.
type FakeResponse struct {
	StatusCode int
	Body       any
	Err        error
	Wait       <-chan struct{}
}

// FakeRequester is a scripted backend for tests. Routes that were never set up
// answer 404 Not Found.
type FakeRequester struct {
	mu        sync.Mutex
	responses map[string]FakeResponse
	calls     []Request
}

func NewFakeRequester() *FakeRequester {
	return &FakeRequester{responses: make(map[string]FakeResponse)}
}

func (f *FakeRequester) Route(method, path string, resp FakeResponse) *FakeRequester {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = resp
	return f
}

// OnGet answers GET path with status and body encoded as JSON.
func (f *FakeRequester) OnGet(path string, status int, body any) *FakeRequester {
	return f.Route(http.MethodGet, path, FakeResponse{StatusCode: status, Body: body})
}

func (f *FakeRequester) Do(ctx context.Context, req Request) (*Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	fr, ok := f.responses[req.Method+" "+req.Path]
	f.mu.Unlock()

	if !ok {
		return &Response{StatusCode: http.StatusNotFound, StatusText: http.StatusText(http.StatusNotFound), Body: []byte(`{"detail":"Not Found"}`)}, nil
	}

	if fr.Wait != nil {
		select {
		case <-fr.Wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if fr.Err != nil {
		return nil, fr.Err
	}

	var body []byte
	switch b := fr.Body.(type) {
	case nil:
	case []byte:
		body = b
	case string:
		body = []byte(b)
	default:
		var err error
		if body, err = json.Marshal(b); err != nil {
			return nil, err
		}
	}

	return &Response{StatusCode: fr.StatusCode, StatusText: http.StatusText(fr.StatusCode), Body: body}, nil
}

func (f *FakeRequester) Calls() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]Request, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *FakeRequester) CallCount(method, path string) int {
	count := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			count++
		}
	}

	return count
}
