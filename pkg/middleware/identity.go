package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"github.com/redhatinsights/platform-go-middlewares/v2/identity"
)

// WrapMiddlewareWithSkipper wraps `func(http.Handler) http.Handler` into `echo.MiddlewareFunc`
func WrapMiddlewareWithSkipper(m func(http.Handler) http.Handler, skip echo_middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if skip != nil && skip(c) {
				return next(c)
			}

			m(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.SetRequest(r)
				c.SetResponse(echo.NewResponse(w, c.Echo()))
				if header := r.Header.Get(api.IdentityHeader); header != "" {
					c.Response().Header().Set(api.IdentityHeader, header)
				}
				err = next(c)
			})).ServeHTTP(c.Response(), c.Request())

			return
		}
	}
}

var unauthenticated = []string{"ping"}

// SkipAuth reports whether the request targets a route served without an identity
func SkipAuth(c echo.Context) bool {
	return skipAuthPath(c.Request().URL.Path)
}

func skipAuthPath(p string) bool {
	trimmed := strings.TrimSuffix(p, "/")
	for _, resource := range unauthenticated {
		if trimmed == "/"+resource {
			return true
		}
		for _, root := range []string{api.FullRootPath(), api.MajorRootPath()} {
			if trimmed == root+"/"+resource {
				return true
			}
		}
	}
	return false
}

// OwnerID returns the organization the request acts for. Domain records,
// locks and audit entries are all partitioned by this value.
func OwnerID(ctx context.Context) string {
	xrhid := identity.GetIdentity(ctx)
	if xrhid.Identity.OrgID != "" {
		return xrhid.Identity.OrgID
	}
	return xrhid.Identity.Internal.OrgID
}

func EnforceOrgId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if SkipAuth(c) {
			return next(c)
		}
		xrhid := identity.GetIdentity(c.Request().Context())
		if xrhid.Identity.Internal.OrgID == "-1" || xrhid.Identity.OrgID == "-1" {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid org ID")
		}
		if OwnerID(c.Request().Context()) == "" {
			return echo.NewHTTPError(http.StatusForbidden, "Missing org ID")
		}
		return next(c)
	}
}
