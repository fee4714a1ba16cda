package webmiddleware

import (
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	uuid "github.com/hashicorp/go-uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	})
}

func newRequestID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return id
}

// RequestLogger logs one entry per request through apex/log. It has to run after
// RequestID and WebAuth to pick up the request id and user.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := clog.UsingCtx(clog.CtxServer).WithFields(log.Fields{
				"method":     v.Method,
				"path":       v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
				"user":       GetIdentity(c).User,
			})

			switch {
			case v.Error != nil:
				entry.WithError(v.Error).Warn("request failed")
			default:
				entry.Info("request")
			}

			return nil
		},
	})
}
