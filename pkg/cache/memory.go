package cache

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	gocache "github.com/patrickmn/go-cache"
)

// memoryCache keeps entries in process, used when no redis is configured
type memoryCache struct {
	store *gocache.Cache
}

func NewMemoryCache(expiration time.Duration) *memoryCache {
	if expiration <= 0 {
		expiration = time.Minute
	}
	return &memoryCache{
		store: gocache.New(expiration, 2*expiration),
	}
}

func (c *memoryCache) GetSiteInfo(_ context.Context, siteID string) (*api.SiteInfo, error) {
	value, found := c.store.Get(siteInfoKey(siteID))
	if !found {
		return nil, NotFound
	}
	siteInfo, ok := value.(api.SiteInfo)
	if !ok {
		return nil, NotFound
	}
	return &siteInfo, nil
}

func (c *memoryCache) SetSiteInfo(_ context.Context, siteID string, siteInfo api.SiteInfo) error {
	c.store.SetDefault(siteInfoKey(siteID), siteInfo)
	return nil
}

func (c *memoryCache) DeleteSiteInfo(_ context.Context, siteID string) error {
	c.store.Delete(siteInfoKey(siteID))
	return nil
}
