package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msweb/webapi/webmiddleware"
	"github.com/edea-dev/msweb/pkg/pages"
	"github.com/edea-dev/msweb/pkg/state"
	"github.com/labstack/echo/v4"
)

type PageController struct {
	fetch msapi.Requester
	store state.Store
}

func NewPageController(fetch msapi.Requester, store state.Store) *PageController {
	return &PageController{fetch: fetch, store: store}
}

// Handler runs load with the layout merged in. The page is answered as a single
// JSON object once every deferred field resolved, or streamed as NDJSON when the
// caller asks for it. Every deferred fetch has finished when the handler returns.
func (pc *PageController) Handler(load pages.Loader) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithCancel(c.Request().Context())
		ev := newEvent(ctx, c, pc.fetch, pc.store)

		layout := pages.Layout(ev)
		page, err := load(ev)
		if err != nil {
			cancel()
			layout.Settle()
			logLoadError(c, err)
			return toHTTPError(err)
		}

		page.Merge(layout)
		defer func() {
			cancel()
			page.Settle()
		}()

		if wantsStream(c) {
			return streamPage(c, page)
		}

		data, err := page.Resolve()
		if err != nil {
			logLoadError(c, err)
			return toHTTPError(err)
		}

		return c.JSON(http.StatusOK, data)
	}
}

func newEvent(ctx context.Context, c echo.Context, fetch msapi.Requester, store state.Store) *pages.Event {
	params := make(map[string]string, len(c.ParamNames()))
	for _, name := range c.ParamNames() {
		params[name] = c.Param(name)
	}

	return &pages.Event{
		Ctx:      ctx,
		Fetch:    fetch,
		Identity: webmiddleware.GetIdentity(c),
		Params:   params,
		Query:    c.QueryParams(),
		State:    store,
	}
}

func logLoadError(c echo.Context, err error) {
	entry := clog.UsingCtx(clog.CtxPages).WithFields(log.Fields{
		"path":       c.Request().URL.Path,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}).WithError(err)

	if errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil {
		entry.Debug("Page load abandoned by caller")
		return
	}

	entry.Warn("Page load failed")
}
