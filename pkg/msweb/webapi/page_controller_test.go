package webapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/state"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageResolvesDeferredFields(t *testing.T) {
	fetch := msapi.NewFakeRequester().
		OnGet("/testruns/overview", http.StatusOK, []msmodel.TestRun{{ID: 1}}).
		OnGet("/users/self", http.StatusOK, map[string]any{"name": "alice"})
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/", "", nil, msmodel.HeaderWebAuthUser, "alice")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "columns")
	assert.Len(t, body["testruns"], 1)
	assert.Equal(t, map[string]any{"name": "alice"}, body["user"])
	assert.Equal(t, "alice", body["identity"].(map[string]any)["user"])

	for _, call := range fetch.Calls() {
		assert.Equal(t, "alice", call.Header.Get(msmodel.HeaderWebAuthUser), call.Path)
	}
}

func TestPageSurfacesBackendStatus(t *testing.T) {
	e := newTestServer(msapi.NewFakeRequester(), state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/testrun/999", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"message": "Not Found"}, decodeBody(t, rec))
}

func TestPageDeferredFailureFailsJSON(t *testing.T) {
	fetch := msapi.NewFakeRequester().OnGet("/testruns/overview", http.StatusInternalServerError, nil)
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPageStreamsDeferredFields(t *testing.T) {
	fetch := msapi.NewFakeRequester().
		OnGet("/testruns/overview", http.StatusOK, []msmodel.TestRun{{ID: 1}}).
		OnGet("/users/self", http.StatusOK, map[string]any{"name": "alice"})
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/", "", nil, echo.HeaderAccept, MIMEApplicationNDJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MIMEApplicationNDJSON, rec.Header().Get(echo.HeaderContentType))

	lines := decodeLines(t, rec)
	require.Len(t, lines, 3)
	assert.Equal(t, lineData, lines[0].Type)
	assert.Contains(t, lines[0].Data, "columns")

	keys := []string{lines[1].Key, lines[2].Key}
	assert.ElementsMatch(t, []string{"testruns", "user"}, keys)
	for _, line := range lines[1:] {
		assert.Equal(t, lineChunk, line.Type)
	}
}

func TestPageStreamsDeferredErrors(t *testing.T) {
	fetch := msapi.NewFakeRequester().OnGet("/testruns/overview", http.StatusServiceUnavailable, nil)
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/?stream=1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var errLine *streamLine
	for _, line := range decodeLines(t, rec) {
		if line.Key == "testruns" {
			errLine = &line
		}
	}

	require.NotNil(t, errLine)
	assert.Equal(t, lineError, errLine.Type)
	assert.Equal(t, http.StatusServiceUnavailable, errLine.Status)
	assert.Equal(t, "Service Unavailable", errLine.Message)
}

func TestComparePage(t *testing.T) {
	fetch := msapi.NewFakeRequester().
		OnGet("/projects/psu", http.StatusOK, msmodel.Project{ID: intPtr(4)}).
		OnGet("/testruns/1", http.StatusOK, msmodel.TestRun{ID: 1}).
		OnGet("/testruns/measurements/1", http.StatusOK, []msmodel.Measurement{})
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/project/compare?id=psu&testruns=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["runs"], 1)

	rec = do(e, http.MethodGet, "/project/compare?id=psu&testruns=1,2", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/project/compare", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectPageUsesStateForSlug(t *testing.T) {
	store := state.NewMemoryStore()
	require.NoError(t, store.ReplaceProjects(t.Context(), "alice", []msmodel.Project{{ID: intPtr(4), ShortCode: strPtr("psu"), Name: "PSU"}}))

	fetch := msapi.NewFakeRequester().
		OnGet("/testruns/project/4", http.StatusOK, []msmodel.TestRun{}).
		OnGet("/specifications/project/4", http.StatusOK, []msmodel.Specification{})
	e := newTestServer(fetch, store)

	rec := do(e, http.MethodGet, "/project/psu", "", nil, msmodel.HeaderWebAuthUser, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "psu", decodeBody(t, rec)["name"])

	// Another user has no remembered projects and falls back to the backend.
	rec = do(e, http.MethodGet, "/project/psu", "", nil, msmodel.HeaderWebAuthUser, "bob")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageStreamsNullChunks(t *testing.T) {
	fetch := msapi.NewFakeRequester().OnGet("/testruns/overview", http.StatusOK, "null")
	e := newTestServer(fetch, state.NewMemoryStore())

	rec := do(e, http.MethodGet, "/?stream=1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"type":"chunk","key":"user","data":null}`)
	assert.Contains(t, rec.Body.String(), `{"type":"chunk","key":"testruns","data":[]}`)
}

func TestPageAbandonedByCaller(t *testing.T) {
	var buf bytes.Buffer
	_, err := clog.Setup(&buf, "info")
	require.NoError(t, err)

	hold := make(chan struct{})
	defer close(hold)

	fetch := msapi.NewFakeRequester().
		Route(http.MethodGet, "/testruns/overview", msapi.FakeResponse{StatusCode: http.StatusOK, Wait: hold})
	e := newTestServer(fetch, state.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, StatusClientClosedRequest, rec.Code)
	assert.NotContains(t, buf.String(), "Page load failed")
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "Backend", err: &msapi.HTTPError{StatusCode: http.StatusNotFound, StatusText: "Not Found"}, code: http.StatusNotFound},
		{name: "Canceled", err: fmt.Errorf("api GET /x: %w", context.Canceled), code: StatusClientClosedRequest},
		{name: "Deadline", err: context.DeadlineExceeded, code: http.StatusGatewayTimeout},
		{name: "Transport", err: errors.New("connection refused"), code: http.StatusBadGateway},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.code, toHTTPError(test.err).Code)
		})
	}
}
