package custom

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const tickerDelay = 30 // in seconds

type Collector struct {
	context context.Context
	metrics *instrumentation.Metrics
	dao     dao.MetricsDao
}

func NewCollector(context context.Context, metrics *instrumentation.Metrics, db *gorm.DB) *Collector {
	if context == nil {
		return nil
	}
	if metrics == nil {
		return nil
	}
	if db == nil {
		return nil
	}
	return &Collector{
		// queries issued every tick stay out of the debug log
		context: log.Logger.Level(config.DBLevel()).WithContext(context),
		metrics: metrics,
		dao:     dao.GetMetricsDao(db),
	}
}

func (c *Collector) iterate() {
	ctx := c.context
	c.metrics.DomainsTotal.Reset()
	for _, status := range []string{config.StatusPending, config.StatusVerified, config.StatusError} {
		c.metrics.DomainsTotal.With(prometheus.Labels{"status": status}).Set(0)
	}
	for status, count := range c.dao.DomainsCountByStatus(ctx) {
		c.metrics.DomainsTotal.With(prometheus.Labels{"status": status}).Set(float64(count))
	}
	c.metrics.OwnersTotal.Set(float64(c.dao.OwnersCount(ctx)))
	c.metrics.FailedSyncs24HoursTotal.Set(float64(c.dao.FailedSyncsLast24HoursCount(ctx)))
}

func (c *Collector) Run() {
	log.Info().Msg("Starting metrics collector go routine")
	ticker := time.NewTicker(tickerDelay * time.Second)
	c.iterate()
	for {
		select {
		case <-ticker.C:
			c.iterate()
		case <-c.context.Done():
			log.Info().Msgf("Stopping metrics collector go routine")
			ticker.Stop()
			return
		}
	}
}
