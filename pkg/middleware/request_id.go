package middleware

import (
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AddRequestId makes sure every request carries a request id, echoes it on the
// response and attaches it to the request scoped logger
func AddRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestId := c.Request().Header.Get(config.HeaderRequestId)
		if requestId == "" {
			requestId = uuid.NewString()
			c.Request().Header.Set(config.HeaderRequestId, requestId)
		}
		c.Set(config.HeaderRequestId, requestId)
		c.Response().Header().Set(config.HeaderRequestId, requestId)

		logger := log.Logger.With().Str(config.RequestIdLoggingKey, requestId).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))
		return next(c)
	}
}

// SkipLogging keeps liveness and scrape traffic out of the access log
func SkipLogging(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/ping" || p == "/ping/" || p == config.Get().Metrics.Path
}
