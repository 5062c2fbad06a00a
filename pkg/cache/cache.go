// Package cache provides the application cache for remote registry snapshots.
package cache

import (
	"context"
	"errors"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/rs/zerolog/log"
)

var NotFound = errors.New("not found in cache")

//go:generate mockery --name Cache --filename cache_mock.go --inpackage
type Cache interface {
	GetSiteInfo(ctx context.Context, siteID string) (*api.SiteInfo, error)
	SetSiteInfo(ctx context.Context, siteID string, siteInfo api.SiteInfo) error
	DeleteSiteInfo(ctx context.Context, siteID string) error
}

func Initialize() Cache {
	if config.Get().Clients.Redis.Host != "" {
		return NewRedisCache()
	} else {
		log.Logger.Warn().Msg("No redis configured, using in-memory application cache")
		return NewMemoryCache(config.Get().Clients.Redis.Expiration.SiteInfo)
	}
}

func siteInfoKey(siteID string) string {
	return "site-info:" + siteID
}
