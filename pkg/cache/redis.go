package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func NewRedisCache() *redisCache {
	return &redisCache{
		client: NewRedisClient(),
	}
}

// NewRedisClient builds a client from the configured redis connection settings
func NewRedisClient() *redis.Client {
	c := config.Get()
	return redis.NewClient(&redis.Options{
		Addr:     config.RedisUrl(),
		Username: c.Clients.Redis.Username,
		Password: c.Clients.Redis.Password,
		DB:       c.Clients.Redis.DB,
	})
}

func (c *redisCache) GetSiteInfo(ctx context.Context, siteID string) (*api.SiteInfo, error) {
	buf, err := c.get(ctx, siteInfoKey(siteID))
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var siteInfo api.SiteInfo
	err = json.Unmarshal(buf, &siteInfo)
	if err != nil {
		return nil, fmt.Errorf("redis unmarshal error: %w", err)
	}
	return &siteInfo, nil
}

func (c *redisCache) SetSiteInfo(ctx context.Context, siteID string, siteInfo api.SiteInfo) error {
	buf, err := json.Marshal(siteInfo)
	if err != nil {
		return fmt.Errorf("unable to marshal for Redis cache: %w", err)
	}

	err = c.client.Set(ctx, siteInfoKey(siteID), string(buf), config.Get().Clients.Redis.Expiration.SiteInfo).Err()
	if err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (c *redisCache) DeleteSiteInfo(ctx context.Context, siteID string) error {
	err := c.client.Del(ctx, siteInfoKey(siteID)).Err()
	if err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

func (c *redisCache) get(ctx context.Context, key string) ([]byte, error) {
	cmd := c.client.Get(ctx, key)
	if errors.Is(cmd.Err(), redis.Nil) {
		return nil, NotFound
	} else if cmd.Err() != nil {
		return nil, fmt.Errorf("redis error: %w", cmd.Err())
	}

	buf, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("redis bytes conversion error: %w", err)
	}
	return buf, err
}
