package jobs

import (
	"context"

	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/db"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Summary counts the outcome of a batch run
type Summary struct {
	Owners    int
	Succeeded int
	Partial   int
	Failed    int
	Skipped   int
}

// ReconcileAllDomains reconciles every owner with at least one live domain record
func ReconcileAllDomains(_ []string) {
	ctx := log.Logger.WithContext(context.Background())
	daoReg := dao.GetDaoRegistry(db.DB)
	reconciler, err := reconcile.NewConfiguredReconciler(ctx, daoReg, registry_client.NewClient(), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build reconciler")
	}

	summary, err := ReconcileOwners(ctx, daoReg.Domain, reconciler, config.Get().Options.SyncConcurrency)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not list domain owners")
	}
	log.Warn().
		Int("owners", summary.Owners).
		Int("succeeded", summary.Succeeded).
		Int("partial", summary.Partial).
		Int("failed", summary.Failed).
		Int("skipped", summary.Skipped).
		Msg("Reconciled all domains")
}

// ReconcileOwners runs one reconciliation per owner, at most concurrency at a time.
// A failed owner does not stop the others.
func ReconcileOwners(ctx context.Context, domains dao.DomainDao, reconciler reconcile.Reconciler, concurrency int) (Summary, error) {
	owners, err := domains.ListOwners(ctx)
	if err != nil {
		return Summary{}, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]string, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, owner := range owners {
		g.Go(func() error {
			result, err := reconciler.Reconcile(gctx, owner)
			switch {
			case ce.IsSyncErrorKind(err, ce.SyncInProgress):
				outcomes[i] = instrumentation.ReconcileResultSkipped
			case err != nil:
				log.Ctx(ctx).Error().Err(err).Str("owner_id", owner).Msg("reconcile failed")
				outcomes[i] = instrumentation.ReconcileResultFailed
			case !result.Success:
				outcomes[i] = instrumentation.ReconcileResultPartial
			default:
				outcomes[i] = instrumentation.ReconcileResultSuccess
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Owners: len(owners)}
	for _, outcome := range outcomes {
		switch outcome {
		case instrumentation.ReconcileResultSuccess:
			summary.Succeeded++
		case instrumentation.ReconcileResultPartial:
			summary.Partial++
		case instrumentation.ReconcileResultSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}
