package dao

import (
	"context"
	"errors"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type domainDaoImpl struct {
	db *gorm.DB
}

func GetDomainDao(db *gorm.DB) DomainDao {
	return domainDaoImpl{
		db: db,
	}
}

// List returns the owner's live records, newest first
func (d domainDaoImpl) List(ctx context.Context, ownerID string) ([]models.DomainRecord, error) {
	records := make([]models.DomainRecord, 0)
	result := d.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, canonical_domain ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (d domainDaoImpl) ListPaginated(ctx context.Context, ownerID string, pageData api.PaginationData, statusFilter string) (api.DomainCollectionResponse, int64, error) {
	var total int64
	records := make([]models.DomainRecord, 0)

	filteredDB := d.db.WithContext(ctx).Model(&models.DomainRecord{}).Where("owner_id = ?", ownerID)
	if statusFilter != "" {
		filteredDB = filteredDB.Where("status = ?", statusFilter)
	}

	if err := filteredDB.Count(&total).Error; err != nil {
		return api.DomainCollectionResponse{}, 0, err
	}
	result := filteredDB.
		Order("created_at DESC, canonical_domain ASC").
		Offset(pageData.Offset).
		Limit(pageData.Limit).
		Find(&records)
	if result.Error != nil {
		return api.DomainCollectionResponse{}, total, result.Error
	}
	return api.DomainCollectionResponse{Data: convertDomainsToResponses(records)}, total, nil
}

// ListTombstoned returns records the owner deleted
func (d domainDaoImpl) ListTombstoned(ctx context.Context, ownerID string) ([]models.DomainRecord, error) {
	records := make([]models.DomainRecord, 0)
	result := d.db.WithContext(ctx).Unscoped().
		Where("owner_id = ? AND deleted_at IS NOT NULL", ownerID).
		Order("canonical_domain ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (d domainDaoImpl) Fetch(ctx context.Context, ownerID string, uuid string) (models.DomainRecord, error) {
	record := models.DomainRecord{}
	result := d.db.WithContext(ctx).Where("uuid = ? AND owner_id = ?", uuid, ownerID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return record, ce.NewNotFoundError("Could not find domain with UUID " + uuid)
		}
		return record, result.Error
	}
	return record, nil
}

// Upsert inserts or overwrites the record keyed by (ownerID, canonicalDomain) in a
// single statement. A tombstoned record is restored.
func (d domainDaoImpl) Upsert(ctx context.Context, ownerID string, canonicalDomain string, fields DomainUpsert) (models.DomainRecord, error) {
	toSave := models.DomainRecord{
		CanonicalDomain: canonicalDomain,
		OwnerID:         ownerID,
		Status:          fields.Status,
		RemoteVerified:  fields.RemoteVerified,
		RemoteSiteID:    fields.RemoteSiteID,
		IsCustomDomain:  fields.IsCustomDomain,
		ErrorMessage:    fields.ErrorMessage,
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "canonical_domain"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "remote_verified", "remote_site_id", "is_custom_domain",
			"error_message", "updated_at", "deleted_at",
		}),
	}).Create(&toSave)
	if result.Error != nil {
		var modelErr models.Error
		if errors.As(result.Error, &modelErr) && modelErr.Validation {
			return models.DomainRecord{}, &ce.DaoError{Message: modelErr.Message, BadValidation: true}
		}
		return models.DomainRecord{}, result.Error
	}

	saved := models.DomainRecord{}
	result = d.db.WithContext(ctx).
		Where("owner_id = ? AND canonical_domain = ?", ownerID, canonicalDomain).
		First(&saved)
	if result.Error != nil {
		return models.DomainRecord{}, result.Error
	}
	return saved, nil
}

// UpdateStatus applies a partial update to a live record and always stamps updated_at
func (d domainDaoImpl) UpdateStatus(ctx context.Context, uuid string, fields DomainStatusUpdate) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if fields.RemoteVerified != nil {
		updates["remote_verified"] = *fields.RemoteVerified
	}
	if fields.RemoteSiteID != nil {
		updates["remote_site_id"] = *fields.RemoteSiteID
	}
	if fields.IsCustomDomain != nil {
		updates["is_custom_domain"] = *fields.IsCustomDomain
	}
	if fields.ErrorMessage != nil {
		if *fields.ErrorMessage == "" {
			updates["error_message"] = nil
		} else {
			updates["error_message"] = *fields.ErrorMessage
		}
	}

	result := d.db.WithContext(ctx).Model(&models.DomainRecord{}).Where("uuid = ?", uuid).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ce.NewNotFoundError("Could not find domain with UUID " + uuid)
	}
	return nil
}

// Delete tombstones the record, it is kept for auditing
func (d domainDaoImpl) Delete(ctx context.Context, ownerID string, uuid string) error {
	result := d.db.WithContext(ctx).Where("uuid = ? AND owner_id = ?", uuid, ownerID).Delete(&models.DomainRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ce.NewNotFoundError("Could not find domain with UUID " + uuid)
	}
	return nil
}

// ListOwners returns every owner with at least one live record
func (d domainDaoImpl) ListOwners(ctx context.Context) ([]string, error) {
	owners := make([]string, 0)
	result := d.db.WithContext(ctx).
		Model(&models.DomainRecord{}).
		Distinct("owner_id").
		Order("owner_id").
		Pluck("owner_id", &owners)
	if result.Error != nil {
		return nil, result.Error
	}
	return owners, nil
}

func DomainModelToApiFields(record models.DomainRecord, apiDomain *api.DomainResponse) {
	apiDomain.UUID = record.UUID
	apiDomain.Domain = record.CanonicalDomain
	apiDomain.OrgID = record.OwnerID
	apiDomain.Status = record.Status
	apiDomain.RemoteVerified = record.RemoteVerified
	apiDomain.IsCustomDomain = record.IsCustomDomain
	apiDomain.CreatedAt = record.CreatedAt
	apiDomain.UpdatedAt = record.UpdatedAt
	if record.RemoteSiteID != nil {
		apiDomain.RemoteSiteID = *record.RemoteSiteID
	}
	if record.ErrorMessage != nil {
		apiDomain.ErrorMessage = *record.ErrorMessage
	}
}

func convertDomainsToResponses(records []models.DomainRecord) []api.DomainResponse {
	domains := make([]api.DomainResponse, len(records))
	for i := range records {
		DomainModelToApiFields(records[i], &domains[i])
	}
	return domains
}
