package reconcile

import (
	"context"

	"github.com/content-services/domain-sync-backend/pkg/audit"
	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/locks"
	"github.com/content-services/domain-sync-backend/pkg/notifications"
)

// NewConfiguredReconciler builds the engine used by the server, the jobs and the
// cli: the owner lock backend from options.owner_lock and notifications from the
// kafka settings.
func NewConfiguredReconciler(ctx context.Context, daoReg *dao.DaoRegistry, client registry_client.RegistryClient, metrics *instrumentation.Metrics) (Reconciler, error) {
	locker, err := locks.NewLocker(ctx)
	if err != nil {
		return nil, err
	}
	return NewReconciler(daoReg, client,
		WithLocker(locker),
		WithMetrics(metrics),
		WithAuditLogger(audit.NewLogger(daoReg.SyncAudit, notifications.NewConfiguredSender())),
	), nil
}
