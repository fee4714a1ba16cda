package pages

import (
	"context"

	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
)

// Layout supplies the fields every page gets. A failed user lookup leaves user
// null rather than failing the page.
func Layout(ev *Event) *Page {
	header := ev.Header()
	user := Defer(ev.Ctx, func(ctx context.Context) (any, error) {
		u, err := msapi.GetJSON[msmodel.User](ctx, ev.Fetch, "/users/self", header)
		if err != nil {
			clog.UsingCtx(clog.CtxPages).WithError(err).Debug("No user for layout")
			return nil, nil
		}
		return u, nil
	})

	return NewPage().
		Set("identity", ev.Identity).
		Defer("user", user)
}
