package locks

import (
	"context"
	"sync"

	"github.com/content-services/domain-sync-backend/pkg/utils"
)

// localLocker guards owners within a single process
type localLocker struct {
	held *utils.ConcurrentMap[string, struct{}]
}

func NewLocalLocker() Locker {
	return &localLocker{held: utils.NewConcurrentMap[string, struct{}]()}
}

func (l *localLocker) TryLock(_ context.Context, ownerID string) (ReleaseFunc, bool, error) {
	if !l.held.SetIfAbsent(ownerID, struct{}{}) {
		return noopRelease, false, nil
	}
	var once sync.Once
	return func() {
		once.Do(func() { l.held.Remove(ownerID) })
	}, true, nil
}
