package webapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/admin/logging", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogControllerSetLogLevel(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })
	lc := NewLogController(clog.NewHandler(&bytes.Buffer{}), log.InfoLevel, "stdout")

	c, rec := logContext(http.MethodPost, `{"log_level":"debug"}`)
	require.NoError(t, lc.SetLogLevel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"log_level":"debug","log_output":"stdout"}`, rec.Body.String())

	c, rec = logContext(http.MethodGet, "")
	require.NoError(t, lc.ShowCurrentLogging(c))
	assert.JSONEq(t, `{"log_level":"debug","log_output":"stdout"}`, rec.Body.String())
}

func TestLogControllerRejectsBadLevel(t *testing.T) {
	lc := NewLogController(clog.NewHandler(&bytes.Buffer{}), log.InfoLevel, "stdout")

	c, _ := logContext(http.MethodPost, `{"log_level":"loud"}`)
	err := lc.SetLogLevel(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestLogControllerSetLogOutput(t *testing.T) {
	h := clog.NewHandler(&bytes.Buffer{})
	lc := NewLogController(h, log.InfoLevel, "stdout")
	path := t.TempDir() + "/msweb.log"
	t.Cleanup(h.Close)

	c, rec := logContext(http.MethodPost, `{"log_output":"`+path+`"}`)
	require.NoError(t, lc.SetLogOutput(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), path)
}
