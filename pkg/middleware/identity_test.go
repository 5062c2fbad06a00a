package middleware

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	test_handler "github.com/content-services/domain-sync-backend/pkg/test/handler"
	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/platform-go-middlewares/v2/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleItWorked(c echo.Context) error {
	return c.JSON(http.StatusOK, "It worked")
}

func TestSkipAuth(t *testing.T) {
	skipped := []string{
		"/ping",
		"/ping/",
		api.FullRootPath() + "/ping",
		api.MajorRootPath() + "/ping/",
	}
	for _, route := range skipped {
		assert.True(t, skipAuthPath(route), route)
	}

	notSkipped := []string{
		"/",
		api.FullRootPath() + "/domains/",
		api.FullRootPath() + "/domains/ping",
		"/api/v1/ping",
		"/openapi.json",
	}
	for _, route := range notSkipped {
		assert.False(t, skipAuthPath(route), route)
	}
}

func TestWrapMiddlewareWithSkipper(t *testing.T) {
	e := echo.New()
	m := WrapMiddlewareWithSkipper(identity.EnforceIdentity, SkipAuth)
	domainsPath := api.FullRootPath() + "/domains/"
	good := base64.StdEncoding.EncodeToString([]byte(`{"identity":{"type":"Associate","account_number":"2093","internal":{"org_id":"7066"}}}`))
	missingType := base64.StdEncoding.EncodeToString([]byte(`{"identity":{"account_number":"2093","internal":{"org_id":"7066"}}}`))

	serve := func(path string, header string) (*httptest.ResponseRecorder, string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(api.IdentityHeader, header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		var owner string
		err := m(func(c echo.Context) error {
			owner = OwnerID(c.Request().Context())
			return c.String(http.StatusOK, "It Worked!")
		})(c)
		require.NoError(t, err)
		return rec, owner
	}

	rec, owner := serve(domainsPath, good)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7066", owner)
	assert.Equal(t, good, rec.Header().Get(api.IdentityHeader))

	rec, _ = serve(domainsPath, missingType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad Request: x-rh-identity header is missing type\n", rec.Body.String())

	// skipped routes never look at the header
	rec, _ = serve("/ping", missingType)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "It Worked!", rec.Body.String())
}

func TestOwnerIDPrefersTopLevelOrg(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var xrhid identity.XRHID
	xrhid.Identity.Internal.OrgID = "internal"
	ctx := identity.WithIdentity(req.Context(), xrhid)
	assert.Equal(t, "internal", OwnerID(ctx))

	xrhid.Identity.OrgID = "top"
	ctx = identity.WithIdentity(req.Context(), xrhid)
	assert.Equal(t, "top", OwnerID(ctx))
}

func TestEnforceOrgId(t *testing.T) {
	e := echo.New()
	e.Use(EnforceOrgId)
	e.HTTPErrorHandler = config.CustomHTTPErrorHandler
	domainsPath := api.FullRootPath() + "/domains/"
	e.GET("/ping", handleItWorked)
	e.GET(domainsPath, handleItWorked)

	serve := func(path string, xrhid *identity.XRHID) (int, string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if xrhid != nil {
			req = req.WithContext(identity.WithIdentity(req.Context(), *xrhid))
		}
		res := httptest.NewRecorder()
		e.ServeHTTP(res, req)
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return res.Code, string(body)
	}

	invalid := test_handler.IdentityFor("-1")
	code, body := serve(domainsPath, &invalid)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, body, "Invalid org ID")

	empty := test_handler.IdentityFor("")
	code, body = serve(domainsPath, &empty)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, body, "Missing org ID")

	valid := test_handler.IdentityFor("7066")
	code, body = serve(domainsPath, &valid)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "\"It worked\"\n", body)

	code, body = serve("/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "\"It worked\"\n", body)
}
