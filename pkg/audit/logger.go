// Package audit records every reconciliation run. Recording is best effort
// and never fails the caller.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/content-services/domain-sync-backend/pkg/notifications"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const OperationReconcile = "reconcile"

// Change is one planned action and its outcome
type Change struct {
	Action string `json:"action"`
	Domain string `json:"domain"`
	Error  string `json:"error,omitempty"`
}

// Entry describes one run
type Entry struct {
	Operation     string
	RemoteDomains []string
	LocalDomains  []string
	Changes       []Change
	SiteInfo      *api.SiteInfo
	Result        api.SyncResult
	Duration      time.Duration
}

//go:generate mockery --name Logger --filename logger_mock.go --inpackage
type Logger interface {
	Record(ctx context.Context, ownerID string, entry Entry)
}

type syncAuditLogger struct {
	auditDao dao.SyncAuditDao
	sender   notifications.Sender
}

func NewLogger(auditDao dao.SyncAuditDao, sender notifications.Sender) Logger {
	if sender == nil {
		sender = notifications.NewSender(nil)
	}
	return syncAuditLogger{auditDao: auditDao, sender: sender}
}

// Record appends the run to the audit store and publishes its result. Runs
// that succeed without changing anything are not published.
func (l syncAuditLogger) Record(ctx context.Context, ownerID string, entry Entry) {
	audit := models.DomainSyncAudit{
		OwnerID:       ownerID,
		Operation:     entry.Operation,
		Success:       entry.Result.Success,
		Message:       entry.Result.Message,
		Error:         entry.Result.Error,
		RemoteDomains: toJSON(ctx, entry.RemoteDomains),
		LocalDomains:  toJSON(ctx, entry.LocalDomains),
		Changes:       toJSON(ctx, entry.Changes),
		DurationMs:    entry.Duration.Milliseconds(),
	}
	if audit.Operation == "" {
		audit.Operation = OperationReconcile
	}
	if entry.SiteInfo != nil {
		audit.SiteInfo = toJSON(ctx, entry.SiteInfo)
	}

	if err := l.auditDao.Create(ctx, &audit); err != nil {
		auditErr := ce.NewSyncError(ce.AuditLogError, "failed to record sync audit", err)
		log.Ctx(ctx).Warn().Err(auditErr).Str("owner_id", ownerID).Msg("sync audit not recorded")
	}

	if publishable(entry.Result) {
		l.sender.SendSyncResult(ctx, ownerID, entry.Result)
	}
}

// publishable is true for aborted runs and for runs that changed or failed to change a record
func publishable(result api.SyncResult) bool {
	if result.Details == nil || !result.Success {
		return true
	}
	d := result.Details
	return len(d.Added)+len(d.Updated)+len(d.Removed)+len(d.Errors) > 0
}

func toJSON(ctx context.Context, value interface{}) datatypes.JSON {
	buf, err := json.Marshal(value)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("unable to marshal audit field")
		return nil
	}
	return datatypes.JSON(buf)
}
