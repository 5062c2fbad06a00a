package dao

import (
	"context"
	"encoding/json"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"gorm.io/gorm"
)

type syncAuditDaoImpl struct {
	db *gorm.DB
}

func GetSyncAuditDao(db *gorm.DB) SyncAuditDao {
	return syncAuditDaoImpl{
		db: db,
	}
}

// Create appends an audit record, records are never updated
func (a syncAuditDaoImpl) Create(ctx context.Context, audit *models.DomainSyncAudit) error {
	return a.db.WithContext(ctx).Create(audit).Error
}

func (a syncAuditDaoImpl) List(ctx context.Context, ownerID string, pageData api.PaginationData) (api.SyncAuditCollectionResponse, int64, error) {
	var total int64
	audits := make([]models.DomainSyncAudit, 0)

	filteredDB := a.db.WithContext(ctx).Model(&models.DomainSyncAudit{}).Where("owner_id = ?", ownerID)
	if err := filteredDB.Count(&total).Error; err != nil {
		return api.SyncAuditCollectionResponse{}, 0, err
	}
	// Most recent run first
	result := filteredDB.Order("created_at DESC").Offset(pageData.Offset).Limit(pageData.Limit).Find(&audits)
	if result.Error != nil {
		return api.SyncAuditCollectionResponse{}, total, result.Error
	}
	return api.SyncAuditCollectionResponse{Data: convertSyncAuditsToResponses(audits)}, total, nil
}

// LastSyncTime returns the time of the owner's latest recorded run, nil when there is none
func (a syncAuditDaoImpl) LastSyncTime(ctx context.Context, ownerID string) (*time.Time, error) {
	audits := make([]models.DomainSyncAudit, 0, 1)
	result := a.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(1).
		Find(&audits)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(audits) == 0 {
		return nil, nil
	}
	return &audits[0].CreatedAt, nil
}

func syncAuditModelToApiFields(audit models.DomainSyncAudit, apiAudit *api.SyncAuditResponse) {
	apiAudit.UUID = audit.UUID
	apiAudit.OrgID = audit.OwnerID
	apiAudit.Operation = audit.Operation
	apiAudit.Success = audit.Success
	apiAudit.Message = audit.Message
	apiAudit.Error = audit.Error
	apiAudit.RemoteDomains = rawJSON(audit.RemoteDomains)
	apiAudit.LocalDomains = rawJSON(audit.LocalDomains)
	apiAudit.Changes = rawJSON(audit.Changes)
	apiAudit.SiteInfo = rawJSON(audit.SiteInfo)
	apiAudit.DurationMs = audit.DurationMs
	apiAudit.CreatedAt = audit.CreatedAt
}

func rawJSON(data []byte) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(data)
}

func convertSyncAuditsToResponses(audits []models.DomainSyncAudit) []api.SyncAuditResponse {
	responses := make([]api.SyncAuditResponse, len(audits))
	for i := range audits {
		syncAuditModelToApiFields(audits[i], &responses[i])
	}
	return responses
}
