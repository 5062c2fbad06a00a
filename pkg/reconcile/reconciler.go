// Package reconcile keeps an owner's local domain records consistent with the
// domains attached to the remote registry site.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/audit"
	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/locks"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	MessageInSync     = "All domains are already in sync"
	MessageFailed     = "Sync failed"
	MessageInProgress = "Sync already in progress"
)

//go:generate mockery --name Reconciler --filename reconciler_mock.go --inpackage
type Reconciler interface {
	// Reconcile runs one reconciliation pass for the owner. Per action failures
	// are reported in the result, a returned error means the run was aborted
	// before any write.
	Reconcile(ctx context.Context, ownerID string) (api.SyncResult, error)
	// SyncStatus reports the sync state of every domain without changing anything
	SyncStatus(ctx context.Context, ownerID string) (api.SyncStatusResponse, error)
	// AddDomain records a user supplied domain and asks the registry to attach it
	AddDomain(ctx context.Context, ownerID string, rawDomain string) (api.DomainResponse, error)
	// RemoveDomain deletes the owner's record and detaches the alias remotely
	RemoveDomain(ctx context.Context, ownerID string, uuid string) error
}

type Option func(*reconcilerImpl)

func WithLocker(locker locks.Locker) Option {
	return func(r *reconcilerImpl) {
		r.locker = locker
	}
}

func WithAuditLogger(logger audit.Logger) Option {
	return func(r *reconcilerImpl) {
		r.audit = logger
	}
}

func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(r *reconcilerImpl) {
		r.metrics = metrics
	}
}

func WithStateUpdater(updater StateUpdater) Option {
	return func(r *reconcilerImpl) {
		r.updater = updater
	}
}

type reconcilerImpl struct {
	daoReg  *dao.DaoRegistry
	client  registry_client.RegistryClient
	updater StateUpdater
	locker  locks.Locker
	audit   audit.Logger
	metrics *instrumentation.Metrics
	flight  *singleflight.Group
}

// NewReconciler builds an engine over the given store and registry client.
// Without options runs are guarded by an in-process lock and audited without notifications.
func NewReconciler(daoReg *dao.DaoRegistry, client registry_client.RegistryClient, opts ...Option) Reconciler {
	r := &reconcilerImpl{
		daoReg: daoReg,
		client: client,
		flight: &singleflight.Group{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.updater == nil {
		r.updater = NewStateUpdater(daoReg.Domain)
	}
	if r.locker == nil {
		r.locker = locks.NewLocalLocker()
	}
	if r.audit == nil {
		r.audit = audit.NewLogger(daoReg.SyncAudit, nil)
	}
	return r
}

type runOutcome struct {
	result api.SyncResult
	err    error
}

// Reconcile coalesces concurrent calls for the same owner into one run. The
// shared run is detached from the caller that started it, a caller whose ctx
// is done stops waiting without affecting the others.
func (r *reconcilerImpl) Reconcile(ctx context.Context, ownerID string) (api.SyncResult, error) {
	runCtx := context.WithoutCancel(ctx)
	ch := r.flight.DoChan(ownerID, func() (interface{}, error) {
		result, err := r.guardedRun(runCtx, ownerID)
		return runOutcome{result: result, err: err}, nil
	})
	select {
	case res := <-ch:
		outcome := res.Val.(runOutcome)
		return outcome.result, outcome.err
	case <-ctx.Done():
		return failedResult(ctx.Err()), ctx.Err()
	}
}

func (r *reconcilerImpl) guardedRun(ctx context.Context, ownerID string) (api.SyncResult, error) {
	release, acquired, err := r.locker.TryLock(ctx, ownerID)
	if err != nil {
		lockErr := ce.NewSyncError(ce.LocalStoreError, "failed to take owner lock", err)
		return failedResult(lockErr), lockErr
	}
	if !acquired {
		r.metrics.RecordReconcileRun(instrumentation.ReconcileResultSkipped, 0)
		busy := ce.NewSyncError(ce.SyncInProgress, MessageInProgress, nil)
		return api.SyncResult{Success: false, Message: MessageInProgress, Error: busy.Error()}, busy
	}
	defer release()
	return r.run(ctx, ownerID)
}

type snapshot struct {
	local      []models.DomainRecord
	tombstoned []models.DomainRecord
	site       api.SiteInfo
}

// fetch reads the local and remote snapshots concurrently
func (r *reconcilerImpl) fetch(ctx context.Context, ownerID string, cached bool) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if snap.local, err = r.daoReg.Domain.List(gctx, ownerID); err != nil {
			return ce.NewSyncError(ce.LocalStoreError, "failed to list local domains", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.tombstoned, err = r.daoReg.Domain.ListTombstoned(gctx, ownerID); err != nil {
			return ce.NewSyncError(ce.LocalStoreError, "failed to list deleted domains", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if cached {
			snap.site, err = r.client.CachedSiteInfo(gctx)
		} else {
			snap.site, err = r.client.GetSiteInfo(gctx)
		}
		if err != nil {
			return ce.NewSyncError(ce.RemoteUnavailable, "failed to fetch remote site info", err)
		}
		return nil
	})
	return snap, g.Wait()
}

func (r *reconcilerImpl) run(ctx context.Context, ownerID string) (api.SyncResult, error) {
	start := time.Now()
	logger := log.Ctx(ctx).With().Str("owner_id", ownerID).Logger()

	snap, err := r.fetch(ctx, ownerID, false)
	if err != nil {
		result := failedResult(err)
		logger.Error().Err(err).Msg("reconcile aborted")
		r.record(ctx, ownerID, audit.Entry{Result: result}, start)
		r.metrics.RecordReconcileRun(instrumentation.ReconcileResultFailed, time.Since(start))
		return result, err
	}

	plan := BuildPlan(snap.local, snap.tombstoned, snap.site)
	details := api.SyncDetails{Added: []string{}, Updated: []string{}, Removed: []string{}, Errors: []string{}}
	changes := make([]audit.Change, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		change := audit.Change{Action: string(action.Kind), Domain: action.Domain}
		applyErr := r.updater.Apply(ctx, ownerID, action)
		r.metrics.RecordReconcileAction(string(action.Kind), applyErr == nil)
		switch {
		case applyErr != nil:
			change.Error = applyErr.Error()
			details.Errors = append(details.Errors, fmt.Sprintf("%s: %s", action.Domain, applyErr.Error()))
			logger.Warn().Err(applyErr).Str("domain", action.Domain).Str("action", string(action.Kind)).Msg("reconcile action failed")
		case action.Kind == ActionInsert:
			details.Added = append(details.Added, action.Domain)
		default:
			details.Updated = append(details.Updated, action.Domain)
		}
		changes = append(changes, change)
	}

	result := api.SyncResult{
		Success: len(details.Errors) == 0,
		Message: summary(plan, details),
		Details: &details,
	}
	r.record(ctx, ownerID, audit.Entry{
		RemoteDomains: plan.RemoteDomains,
		LocalDomains:  plan.LocalDomains,
		Changes:       changes,
		SiteInfo:      &snap.site,
		Result:        result,
	}, start)

	outcome := instrumentation.ReconcileResultSuccess
	if !result.Success {
		outcome = instrumentation.ReconcileResultPartial
	}
	r.metrics.RecordReconcileRun(outcome, time.Since(start))
	logger.Info().
		Int("added", len(details.Added)).
		Int("updated", len(details.Updated)).
		Int("errors", len(details.Errors)).
		Dur("duration", time.Since(start)).
		Msg("reconcile finished")
	return result, nil
}

func (r *reconcilerImpl) record(ctx context.Context, ownerID string, entry audit.Entry, start time.Time) {
	entry.Operation = audit.OperationReconcile
	entry.Duration = time.Since(start)
	r.audit.Record(ctx, ownerID, entry)
}

func summary(plan Plan, details api.SyncDetails) string {
	if plan.Empty() {
		return MessageInSync
	}
	return fmt.Sprintf("Sync completed: %d added, %d updated, %d errors", len(details.Added), len(details.Updated), len(details.Errors))
}

func failedResult(err error) api.SyncResult {
	return api.SyncResult{Success: false, Message: MessageFailed, Error: err.Error()}
}

func (r *reconcilerImpl) SyncStatus(ctx context.Context, ownerID string) (api.SyncStatusResponse, error) {
	var lastSync *time.Time
	g, gctx := errgroup.WithContext(ctx)
	var snap snapshot
	g.Go(func() error {
		var err error
		snap, err = r.fetch(gctx, ownerID, true)
		return err
	})
	g.Go(func() error {
		var err error
		if lastSync, err = r.daoReg.SyncAudit.LastSyncTime(gctx, ownerID); err != nil {
			return ce.NewSyncError(ce.LocalStoreError, "failed to read last sync time", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return api.SyncStatusResponse{}, err
	}
	return api.SyncStatusResponse{
		Data:     StatusEntries(snap.local, snap.tombstoned, snap.site, lastSync),
		SiteInfo: &snap.site,
	}, nil
}
