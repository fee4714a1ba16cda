package webmiddleware

import (
	"net/http"
	"strings"

	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const IdentityKey = "identity"

var (
	DevGroups = []string{"default-group", "test-group", "secret-group"}
	DevRoles  = []string{"default-role", "admin"}
)

type WebAuthConfig struct {
	Skipper middleware.Skipper

	// DevIdentity fills in the groups and roles the development proxy would assert
	// when the request carries none.
	DevIdentity bool
}

// WebAuth reads the caller identity from the X-WebAuth-* headers set by the fronting
// proxy, stores it on the context and rewrites the headers into their canonical
// single value form so they forward cleanly.
func WebAuth(config WebAuthConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			id := identityFromHeader(c.Request().Header)
			if config.DevIdentity {
				if len(id.Groups) == 0 {
					id.Groups = DevGroups
				}

				if len(id.Roles) == 0 {
					id.Roles = DevRoles
				}
			}

			id.ApplyTo(c.Request().Header)
			c.Set(IdentityKey, id)

			return next(c)
		}
	}
}

// GetIdentity returns the identity WebAuth stored, or the default identity.
func GetIdentity(c echo.Context) msmodel.Identity {
	if id, ok := c.Get(IdentityKey).(msmodel.Identity); ok {
		return id
	}

	return msmodel.DefaultIdentity()
}

func identityFromHeader(h http.Header) msmodel.Identity {
	user := strings.TrimSpace(h.Get(msmodel.HeaderWebAuthUser))
	if user == "" {
		user = msmodel.DefaultUser
	}

	return msmodel.Identity{
		User:   user,
		Groups: splitHeaderValues(h.Values(msmodel.HeaderWebAuthGroups)),
		Roles:  splitHeaderValues(h.Values(msmodel.HeaderWebAuthRoles)),
	}
}

// splitHeaderValues flattens repeated and comma joined header values.
func splitHeaderValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}

	return out
}
