package msapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Request is a single call against the backend API. Path is relative to the API
// root, e.g. "/testruns/7".
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   any
}

type Response struct {
	StatusCode int
	StatusText string
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) DecodeJSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Requester is the fetch capability handed to loaders and form actions.
type Requester interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Path joins segments into an API path, escaping each one.
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	return b.String()
}
