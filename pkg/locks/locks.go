// Package locks provides per-owner guards that keep two reconciliation runs
// for the same owner from interleaving.
package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/cache"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/db"
)

// ReleaseFunc gives up a held lock, it is safe to call more than once
type ReleaseFunc func()

type Locker interface {
	// TryLock takes the owner's lock without waiting. acquired is false when
	// another holder has it.
	TryLock(ctx context.Context, ownerID string) (release ReleaseFunc, acquired bool, err error)
}

// processLocker is shared by every engine of the process when owner_lock is local
var processLocker = NewLocalLocker()

// NewLocker returns the backend selected by options.owner_lock
func NewLocker(ctx context.Context) (Locker, error) {
	options := config.Get().Options
	switch options.OwnerLock {
	case "", config.OwnerLockLocal:
		return processLocker, nil
	case config.OwnerLockRedis:
		return NewRedisLocker(cache.NewRedisClient(), ownerLockTTL(options, config.Get().Clients.Registry)), nil
	case config.OwnerLockPostgres:
		return NewPostgresLocker(ctx, db.GetUrl())
	default:
		return nil, fmt.Errorf("unknown owner lock backend %q", options.OwnerLock)
	}
}

// ownerLockTTL is the configured ttl, raised to cover a run that spends every
// registry attempt up to its timeout
func ownerLockTTL(options config.Options, registry config.Registry) time.Duration {
	attempts := registry.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	floor := 2 * time.Duration(attempts) * registry.Timeout
	if options.OwnerLockTTL < floor {
		return floor
	}
	return options.OwnerLockTTL
}

func lockKey(ownerID string) string {
	return config.DefaultAppName + ":owner-lock:" + ownerID
}

func noopRelease() {}
