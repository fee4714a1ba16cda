package msapi

import (
	"context"
	"fmt"
	"net/http"
)

// GetJSON fetches path and decodes the body into T. A non 2xx response fails with
// an *HTTPError carrying the status.
func GetJSON[T any](ctx context.Context, r Requester, path string, header http.Header) (T, error) {
	var out T

	req := Request{Method: http.MethodGet, Path: path, Header: header}
	resp, err := r.Do(ctx, req)
	if err != nil {
		return out, err
	}

	if !resp.OK() {
		return out, ToErrorFromResponse(req, resp)
	}

	if err := resp.DecodeJSON(&out); err != nil {
		return out, fmt.Errorf("api %s %s: invalid json: %w", req.Method, req.Path, err)
	}

	return out, nil
}
