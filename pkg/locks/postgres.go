package locks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/config"
	zerologadapter "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog/log"
)

// Pool matches the parts of pgxpool.Pool the advisory locker needs
type Pool interface {
	Acquire(ctx context.Context) (Connection, error)
}

// Connection mimics a pooled pgx connection
type Connection interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Release()
}

// PgxPoolWrapper adapts pgxpool.Pool to the Pool interface
type PgxPoolWrapper struct {
	pool *pgxpool.Pool
}

func (p *PgxPoolWrapper) Acquire(ctx context.Context) (Connection, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

const (
	sqlTryAdvisoryLock = `SELECT pg_try_advisory_lock(hashtext($1))`
	sqlAdvisoryUnlock  = `SELECT pg_advisory_unlock(hashtext($1))`
)

// postgresLocker holds a session advisory lock on a dedicated connection for the duration of a run
type postgresLocker struct {
	pool Pool
}

func NewPgxPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pxConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	level, err := tracelog.LogLevelFromString(config.Get().Logging.Level)
	if err != nil {
		log.Error().Err(err).Msg("Error setting Pgx log level")
		level = tracelog.LogLevelWarn
	}
	pxConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   zerologadapter.NewLogger(log.Logger),
		LogLevel: level,
	}
	pool, err := pgxpool.NewWithConfig(ctx, pxConfig)
	if err != nil {
		return nil, fmt.Errorf("error establishing connection: %w", err)
	}
	return pool, nil
}

func NewPostgresLocker(ctx context.Context, url string) (Locker, error) {
	pool, err := NewPgxPool(ctx, url)
	if err != nil {
		return nil, err
	}
	return newPostgresLocker(&PgxPoolWrapper{pool: pool}), nil
}

func newPostgresLocker(pool Pool) Locker {
	return &postgresLocker{pool: pool}
}

func (l *postgresLocker) TryLock(ctx context.Context, ownerID string) (ReleaseFunc, bool, error) {
	key := lockKey(ownerID)
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return noopRelease, false, fmt.Errorf("error acquiring connection: %w", err)
	}

	var acquired bool
	err = conn.QueryRow(ctx, sqlTryAdvisoryLock, key).Scan(&acquired)
	if err != nil {
		conn.Release()
		return noopRelease, false, fmt.Errorf("advisory lock error: %w", err)
	}
	if !acquired {
		conn.Release()
		return noopRelease, false, nil
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := conn.Exec(releaseCtx, sqlAdvisoryUnlock, key); err != nil {
				log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to release advisory lock")
			}
			conn.Release()
		})
	}, true, nil
}
