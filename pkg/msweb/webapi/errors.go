package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/pages"
	"github.com/labstack/echo/v4"
)

// StatusClientClosedRequest answers loads the caller abandoned; it only shows up in
// the request log.
const StatusClientClosedRequest = 499

// toHTTPError maps a load or submit failure onto the status the caller sees. Backend
// statuses pass through with their status text.
func toHTTPError(err error) *echo.HTTPError {
	var (
		httpErr   *echo.HTTPError
		statusErr *pages.StatusError
	)

	if apiErr, ok := msapi.AsHTTPError(err); ok {
		return echo.NewHTTPError(apiErr.StatusCode, apiErr.StatusText).SetInternal(err)
	}

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &statusErr):
		return echo.NewHTTPError(statusErr.Status, statusErr.Message)
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(StatusClientClosedRequest, "Client Closed Request").SetInternal(err)
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout)).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusBadGateway, http.StatusText(http.StatusBadGateway)).SetInternal(err)
	}
}

func errorStatus(err error) (int, string) {
	httpErr := toHTTPError(err)
	if msg, ok := httpErr.Message.(string); ok {
		return httpErr.Code, msg
	}

	return httpErr.Code, http.StatusText(httpErr.Code)
}
