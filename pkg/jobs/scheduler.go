package jobs

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler reconciles all owners on a cron schedule inside the API process
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler returns nil when schedule is empty. Overlapping ticks are skipped.
func NewScheduler(ctx context.Context, schedule string, domains dao.DomainDao, reconciler reconcile.Reconciler, concurrency int, metrics *instrumentation.Metrics) (*Scheduler, error) {
	if schedule == "" {
		return nil, nil
	}
	logger := cron.PrintfLogger(&log.Logger)
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	_, err := c.AddFunc(schedule, func() {
		metrics.RecordSchedulerRun(time.Now())
		summary, err := ReconcileOwners(ctx, domains, reconciler, concurrency)
		if err != nil {
			log.Error().Err(err).Msg("scheduled reconcile failed")
			return
		}
		log.Info().
			Int("owners", summary.Owners).
			Int("failed", summary.Failed).
			Msg("scheduled reconcile finished")
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	if s == nil {
		return
	}
	s.cron.Start()
}

// Stop waits for a running reconcile to finish or ctx to be done
func (s *Scheduler) Stop(ctx context.Context) {
	if s == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
