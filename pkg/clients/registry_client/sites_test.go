package registry_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	siteIDTest = "site-1"
	tokenTest  = "secret-token"
)

const siteJSON = `{
	"id": "site-1",
	"name": "marketing",
	"url": "http://marketing.example.app",
	"ssl_url": "https://marketing.example.app",
	"custom_domain": "Example.com",
	"domain_aliases": ["foo.example.com", "www.bar.example.com"],
	"state": "current"
}`

// fakeRegistry serves a single site and applies alias patches to it
type fakeRegistry struct {
	t       *testing.T
	site    map[string]interface{}
	patches int32
	gets    int32
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	site := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(siteJSON), &site))
	return &fakeRegistry{t: t, site: site}
}

func (f *fakeRegistry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/sites/"+siteIDTest, r.URL.Path)
	assert.Equal(f.t, "Bearer "+tokenTest, r.Header.Get("Authorization"))

	switch r.Method {
	case http.MethodGet:
		atomic.AddInt32(&f.gets, 1)
	case http.MethodPatch:
		atomic.AddInt32(&f.patches, 1)
		body, err := io.ReadAll(r.Body)
		assert.NoError(f.t, err)
		var req siteAliasesRequest
		assert.NoError(f.t, json.Unmarshal(body, &req))
		f.site["domain_aliases"] = req.DomainAliases
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	assert.NoError(f.t, json.NewEncoder(w).Encode(f.site))
}

func newTestClient(server *httptest.Server, c cache.Cache) registryClientImpl {
	return newRegistryClient(server.URL+"/", tokenTest, siteIDTest, server.Client(), c)
}

func TestGetSiteInfo(t *testing.T) {
	fake := newFakeRegistry(t)
	server := httptest.NewServer(fake)
	defer server.Close()

	c := cache.NewMemoryCache(0)
	rc := newTestClient(server, c)

	info, err := rc.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "site-1", info.SiteID)
	assert.Equal(t, "marketing", info.Name)
	assert.Equal(t, "Example.com", info.CustomDomain)
	assert.Equal(t, []string{"Example.com", "foo.example.com", "www.bar.example.com"}, info.Domains())

	cached, err := c.GetSiteInfo(context.Background(), siteIDTest)
	require.NoError(t, err)
	assert.Equal(t, info, *cached)
}

func TestGetSiteInfoNullCustomDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "site-1", "name": "bare", "custom_domain": null, "domain_aliases": null}`))
	}))
	defer server.Close()

	info, err := newTestClient(server, nil).GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, info.CustomDomain)
	assert.NotNil(t, info.DomainAliases)
	assert.Empty(t, info.Domains())
}

func TestGetSiteInfoErrors(t *testing.T) {
	statuses := []struct {
		code      int
		retryable bool
	}{
		{http.StatusUnauthorized, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusBadGateway, true},
	}
	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status.code)
			_, _ = w.Write([]byte(`{"message": "nope"}`))
		}))

		_, err := newTestClient(server, nil).GetSiteInfo(context.Background())
		server.Close()

		require.Error(t, err)
		var regErr *RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, status.code, regErr.StatusCode)
		assert.Equal(t, status.retryable, regErr.Retryable, "status %d", status.code)
		assert.Contains(t, err.Error(), "nope")
	}
}

func TestGetSiteInfoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rc := newTestClient(server, nil)
	server.Close()

	_, err := rc.GetSiteInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}

func TestGetSiteInfoNotConfigured(t *testing.T) {
	rc := newRegistryClient("http://localhost", "", "", http.DefaultClient, nil)
	_, err := rc.GetSiteInfo(context.Background())
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}

func TestCachedSiteInfo(t *testing.T) {
	fake := newFakeRegistry(t)
	server := httptest.NewServer(fake)
	defer server.Close()

	ctx := context.Background()
	mockCache := cache.NewMockCache(t)
	cachedInfo := api.SiteInfo{SiteID: siteIDTest, Name: "cached"}
	mockCache.On("GetSiteInfo", ctx, siteIDTest).Return(&cachedInfo, nil).Once()

	rc := newTestClient(server, mockCache)
	info, err := rc.CachedSiteInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cached", info.Name)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fake.gets))

	mockCache.On("GetSiteInfo", ctx, siteIDTest).Return(nil, cache.NotFound).Once()
	mockCache.On("SetSiteInfo", ctx, siteIDTest, mock.AnythingOfType("api.SiteInfo")).Return(nil).Once()
	info, err = rc.CachedSiteInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "marketing", info.Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.gets))
}

func TestRequestAddDomain(t *testing.T) {
	fake := newFakeRegistry(t)
	server := httptest.NewServer(fake)
	defer server.Close()

	rc := newTestClient(server, cache.NewMemoryCache(0))
	result, err := rc.RequestAddDomain(context.Background(), "https://www.New.example.com/", "local-uuid")
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.AlreadyAttached)
	require.NotNil(t, result.SiteInfo)
	assert.Contains(t, result.SiteInfo.DomainAliases, "new.example.com")
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.patches))
}

func TestRequestAddDomainAlreadyAttached(t *testing.T) {
	fake := newFakeRegistry(t)
	server := httptest.NewServer(fake)
	defer server.Close()

	rc := newTestClient(server, nil)
	for _, domain := range []string{"example.com", "FOO.example.com", "bar.example.com"} {
		result, err := rc.RequestAddDomain(context.Background(), domain, "local-uuid")
		require.NoError(t, err)
		assert.True(t, result.Accepted, domain)
		assert.True(t, result.AlreadyAttached, domain)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&fake.patches))
}

func TestRemoveDomain(t *testing.T) {
	fake := newFakeRegistry(t)
	server := httptest.NewServer(fake)
	defer server.Close()

	rc := newTestClient(server, nil)

	result, err := rc.RemoveDomain(context.Background(), "foo.example.com")
	require.NoError(t, err)
	assert.True(t, result.Removed)
	assert.Equal(t, []string{"www.bar.example.com"}, result.SiteInfo.DomainAliases)

	result, err = rc.RemoveDomain(context.Background(), "missing.example.com")
	require.NoError(t, err)
	assert.False(t, result.Removed)
	assert.Contains(t, result.Message, "not found")

	result, err = rc.RemoveDomain(context.Background(), "example.com")
	require.NoError(t, err)
	assert.False(t, result.Removed)
	assert.Contains(t, result.Message, "primary custom domain")
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.patches))
}

func TestTestConnection(t *testing.T) {
	server := httptest.NewServer(newFakeRegistry(t))
	rc := newTestClient(server, nil)

	status := rc.TestConnection(context.Background())
	assert.True(t, status.Reachable)
	assert.Equal(t, "marketing", status.SiteName)
	assert.Equal(t, 3, status.DomainCount)
	assert.True(t, status.HasCustomDomain)
	assert.True(t, status.SslEnabled)
	assert.Empty(t, status.Error)

	server.Close()
	status = rc.TestConnection(context.Background())
	assert.False(t, status.Reachable)
	assert.NotEmpty(t, status.Error)
}

func TestCheckDomain(t *testing.T) {
	server := httptest.NewServer(newFakeRegistry(t))
	defer server.Close()
	rc := newTestClient(server, nil)

	check, err := rc.CheckDomain(context.Background(), "https://www.example.com")
	require.NoError(t, err)
	assert.Equal(t, api.DomainCheckResponse{Domain: "example.com", Exists: true, IsCustomDomain: true}, check)

	check, err = rc.CheckDomain(context.Background(), "bar.example.com")
	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.False(t, check.IsCustomDomain)

	check, err = rc.CheckDomain(context.Background(), "nowhere.example.com")
	require.NoError(t, err)
	assert.False(t, check.Exists)
}
