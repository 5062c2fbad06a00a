package locks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// releaseScript deletes the key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker guards owners across processes with an expiring SET NX key
type redisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &redisLocker{client: client, ttl: ttl}
}

func (l *redisLocker) TryLock(ctx context.Context, ownerID string) (ReleaseFunc, bool, error) {
	key := lockKey(ownerID)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return noopRelease, false, fmt.Errorf("redis lock error: %w", err)
	}
	if !acquired {
		return noopRelease, false, nil
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			deleted, err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Int()
			if err != nil {
				log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to release owner lock")
			} else if deleted == 0 {
				log.Warn().Str("owner_id", ownerID).Dur("ttl", l.ttl).Msg("owner lock expired before the run finished")
			}
		})
	}, true, nil
}
