package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/msapi"
)

const (
	ErrTypeUniqueViolation = "unique_violation"
	MsgUniqueViolation     = "An entry with this value already exists"
)

// SubmitError is a write the backend refused for a reason that can't be mapped onto
// a form field.
type SubmitError struct {
	Method     string
	Path       string
	StatusCode int
	StatusText string
	Body       []byte
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.StatusText)
}

// Detail returns the backend body decoded as JSON, or as a string when it isn't JSON.
func (e *SubmitError) Detail() any {
	var detail any
	if err := json.Unmarshal(e.Body, &detail); err != nil {
		return string(e.Body)
	}

	return detail
}

type validationErrorBody struct {
	Error *struct {
		Type  string `json:"type"`
		Field string `json:"field"`
	} `json:"error"`
}

// SubmitForm creates or updates the entity behind form at /{endpoint}. The form's
// intent picks POST /{endpoint} or PUT /{endpoint}/{id}. body replaces form.Data as
// the request body when non nil.
//
// On success the decoded response body is returned. A 422 unique_violation is put on
// the offending field and the body returned without an error; every other failure
// is a *SubmitError.
func SubmitForm[T Identified](ctx context.Context, fetch msapi.Requester, endpoint string, form *Form[T], header http.Header, body any) (any, error) {
	req := msapi.Request{Method: http.MethodPost, Path: msapi.Path(endpoint), Header: header, Body: body}
	if id, ok := form.Intent().ID(); ok {
		req.Method = http.MethodPut
		req.Path = msapi.Path(endpoint, strconv.Itoa(id))
	}

	if req.Body == nil {
		req.Body = form.Data
	}

	resp, err := fetch.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var decoded any
	if len(resp.Body) != 0 {
		if err := resp.DecodeJSON(&decoded); err != nil && resp.OK() {
			return nil, fmt.Errorf("submit %s %s: invalid json: %w", req.Method, req.Path, err)
		}
	}

	if resp.OK() {
		return decoded, nil
	}

	submitErr := &SubmitError{
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Body:       resp.Body,
	}

	if resp.StatusCode != http.StatusUnprocessableEntity {
		return nil, submitErr
	}

	var verr validationErrorBody
	if err := json.Unmarshal(resp.Body, &verr); err != nil || verr.Error == nil {
		return nil, submitErr
	}

	switch verr.Error.Type {
	case ErrTypeUniqueViolation:
		if verr.Error.Field == "" {
			form.AddFormError(MsgUniqueViolation)
		} else {
			form.AddFieldError(verr.Error.Field, MsgUniqueViolation)
		}
		return decoded, nil
	default:
		clog.UsingCtx(clog.CtxForms).WithFields(log.Fields{
			"endpoint": endpoint,
			"type":     verr.Error.Type,
			"field":    verr.Error.Field,
		}).Warn("unhandled validation error type")
		return nil, submitErr
	}
}
