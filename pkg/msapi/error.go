package msapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HTTPError is returned when the backend answers with a non 2xx status.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	StatusText string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.StatusText)
}

func ToErrorFromResponse(req Request, resp *Response) *HTTPError {
	return &HTTPError{
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Body:       resp.Body,
	}
}

// AsHTTPError unwraps err looking for an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	return nil, false
}

// StatusText turns a status line such as "404 Not Found" into "Not Found", falling
// back to the standard text for the code.
func StatusText(code int, status string) string {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		return http.StatusText(code)
	}

	return text
}
