package test

import (
	"context"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// MockCtx returns a context carrying a logger and a request id, as request handlers receive
func MockCtx() context.Context {
	requestID := uuid.NewString()
	logger := zerolog.Nop().With().Str(config.RequestIdLoggingKey, requestID).Logger()
	ctx := context.WithValue(context.Background(), requestIDKey{}, requestID)
	return logger.WithContext(ctx)
}
