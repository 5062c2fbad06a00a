package dao

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"gorm.io/gorm"
)

type DaoRegistry struct {
	Domain    DomainDao
	SyncAudit SyncAuditDao
	Metrics   MetricsDao
}

func GetDaoRegistry(db *gorm.DB) *DaoRegistry {
	reg := DaoRegistry{
		Domain:    GetDomainDao(db),
		SyncAudit: GetSyncAuditDao(db),
		Metrics:   GetMetricsDao(db),
	}
	return &reg
}

// DomainUpsert holds the fields written when a domain record is inserted or
// overwritten by its (owner, canonical domain) key
type DomainUpsert struct {
	Status         string
	RemoteVerified bool
	RemoteSiteID   *string
	IsCustomDomain bool
	ErrorMessage   *string
}

// DomainStatusUpdate is a partial update, nil fields are left untouched.
// An empty ErrorMessage clears the column.
type DomainStatusUpdate struct {
	Status         *string
	RemoteVerified *bool
	RemoteSiteID   *string
	IsCustomDomain *bool
	ErrorMessage   *string
}

//go:generate mockery --name DomainDao --filename domains_mock.go --inpackage
type DomainDao interface {
	List(ctx context.Context, ownerID string) ([]models.DomainRecord, error)
	ListPaginated(ctx context.Context, ownerID string, pageData api.PaginationData, statusFilter string) (api.DomainCollectionResponse, int64, error)
	ListTombstoned(ctx context.Context, ownerID string) ([]models.DomainRecord, error)
	Fetch(ctx context.Context, ownerID string, uuid string) (models.DomainRecord, error)
	Upsert(ctx context.Context, ownerID string, canonicalDomain string, fields DomainUpsert) (models.DomainRecord, error)
	UpdateStatus(ctx context.Context, uuid string, fields DomainStatusUpdate) error
	Delete(ctx context.Context, ownerID string, uuid string) error
	ListOwners(ctx context.Context) ([]string, error)
}

//go:generate mockery --name SyncAuditDao --filename sync_audits_mock.go --inpackage
type SyncAuditDao interface {
	Create(ctx context.Context, audit *models.DomainSyncAudit) error
	List(ctx context.Context, ownerID string, pageData api.PaginationData) (api.SyncAuditCollectionResponse, int64, error)
	LastSyncTime(ctx context.Context, ownerID string) (*time.Time, error)
}

//go:generate mockery --name MetricsDao --filename metrics_mock.go --inpackage
type MetricsDao interface {
	DomainsCount(ctx context.Context) int
	DomainsCountByStatus(ctx context.Context) map[string]int
	OwnersCount(ctx context.Context) int
	FailedSyncsLast24HoursCount(ctx context.Context) int
}
