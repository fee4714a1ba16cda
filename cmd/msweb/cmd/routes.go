package cmd

import (
	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/config"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msproxy"
	"github.com/edea-dev/msweb/pkg/msweb/webapi"
	"github.com/edea-dev/msweb/pkg/msweb/webapi/webmiddleware"
	"github.com/edea-dev/msweb/pkg/pages"
	"github.com/edea-dev/msweb/pkg/state"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouteOpts struct {
	settings   config.Settings
	fetch      msapi.Requester
	store      state.Store
	logHandler *clog.Handler
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	e.Use(middleware.Recover())
	e.Use(webmiddleware.RequestID())
	e.Use(webmiddleware.WebAuth(webmiddleware.WebAuthConfig{DevIdentity: opts.settings.DevIdentity}))
	e.Use(webmiddleware.RequestLogger())

	setupPageRoutes(e, opts)
	setupAPIProxy(e, opts)
	setupAdminRoutes(e, opts)
}

func setupPageRoutes(e *echo.Echo, opts RouteOpts) {
	pageController := webapi.NewPageController(opts.fetch, opts.store)
	e.GET("/", pageController.Handler(pages.Overview))
	e.GET("/projects", pageController.Handler(pages.Projects))
	e.GET("/project/compare", pageController.Handler(pages.Compare))
	e.GET("/project/:slug", pageController.Handler(pages.Project))
	e.GET("/testruns", pageController.Handler(pages.TestRuns))
	e.GET("/testrun/code/:short_code", pageController.Handler(pages.TestRunByShortCode))
	e.GET("/testrun/:id", pageController.Handler(pages.TestRun))

	formController := webapi.NewFormController(opts.fetch, opts.store)
	e.POST("/projects", formController.SubmitProject)
	e.POST("/project/:slug", formController.SubmitSpecification)
}

func setupAPIProxy(e *echo.Echo, opts RouteOpts) {
	g := e.Group(msproxy.Prefix)
	g.Use(msproxy.Proxy(msproxy.NewBalancer(opts.settings.APITargets)))
}

func setupAdminRoutes(e *echo.Echo, opts RouteOpts) {
	level, err := log.ParseLevel(opts.settings.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	g := e.Group("/admin")
	logController := webapi.NewLogController(opts.logHandler, level, "stdout")
	g.GET("/logging", logController.ShowCurrentLogging)
	g.POST("/logging/level", logController.SetLogLevel)
	g.POST("/logging/output", logController.SetLogOutput)
}
