package registry_client

import (
	"context"
	"net/http"
	"strings"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/cache"
	"github.com/content-services/domain-sync-backend/pkg/config"
)

//go:generate mockery --name RegistryClient --filename registry_client_mock.go --inpackage
type RegistryClient interface {
	// GetSiteInfo fetches a fresh snapshot of the site and its domains
	GetSiteInfo(ctx context.Context) (api.SiteInfo, error)
	// CachedSiteInfo returns a cached snapshot when one is available
	CachedSiteInfo(ctx context.Context) (api.SiteInfo, error)
	RequestAddDomain(ctx context.Context, domain string, localID string) (AddDomainResult, error)
	RemoveDomain(ctx context.Context, domain string) (RemoveDomainResult, error)
	TestConnection(ctx context.Context) api.RegistryConnectionResponse
	CheckDomain(ctx context.Context, domain string) (api.DomainCheckResponse, error)
}

type AddDomainResult struct {
	Accepted        bool
	AlreadyAttached bool
	SiteInfo        *api.SiteInfo
}

type RemoveDomainResult struct {
	Removed  bool
	Message  string
	SiteInfo *api.SiteInfo
}

type registryClientImpl struct {
	client *http.Client
	cache  cache.Cache
	server string
	token  string
	siteID string
}

// NewRegistryClient returns a client for the configured site without retries
func NewRegistryClient(c cache.Cache) RegistryClient {
	cfg := config.Get().Clients.Registry
	return newRegistryClient(cfg.Server, cfg.Token, cfg.SiteID, &http.Client{Timeout: cfg.Timeout}, c)
}

// NewClient returns the configured registry client wrapped with bounded retries
func NewClient(opts ...RetryOption) RegistryClient {
	cfg := config.Get().Clients.Registry
	return NewRetryingClient(NewRegistryClient(cache.Initialize()), cfg.RetryAttempts, cfg.RetryInitialInterval, opts...)
}

func newRegistryClient(server, token, siteID string, httpClient *http.Client, c cache.Cache) registryClientImpl {
	return registryClientImpl{
		client: httpClient,
		cache:  c,
		server: strings.TrimRight(server, "/"),
		token:  token,
		siteID: siteID,
	}
}
