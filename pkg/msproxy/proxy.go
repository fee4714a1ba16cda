// Package msproxy forwards /api/* to the backend with the /api prefix removed, so
// the browser can talk to the backend through the same origin as the pages.
package msproxy

import (
	"net/http"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const Prefix = "/api"

// Proxy is the middleware for the /api group. It answers 503 while b has no targets.
func Proxy(b *Balancer) echo.MiddlewareFunc {
	proxy := middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: b,
		Rewrite: map[string]string{
			Prefix + "/*": "/$1",
		},
		ModifyResponse: func(res *http.Response) error {
			clog.UsingCtx(clog.CtxProxy).WithFields(log.Fields{
				"method": res.Request.Method,
				"path":   res.Request.URL.Path,
				"status": res.StatusCode,
			}).Debug("proxied")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := proxy(next)
		return func(c echo.Context) error {
			if b.Len() == 0 {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "no api targets configured")
			}

			return h(c)
		}
	}
}
