package models

import (
	"github.com/content-services/domain-sync-backend/pkg/config"
	"gorm.io/gorm"
)

// DomainRecord is a custom domain owned by a principal, mirrored against the
// remote registry. Rows are never hard deleted by reconciliation.
type DomainRecord struct {
	Base
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	CanonicalDomain string         `gorm:"uniqueIndex:idx_domain_records_owner_domain;not null"`
	OwnerID         string         `gorm:"uniqueIndex:idx_domain_records_owner_domain;not null"`
	Status          string         `gorm:"default:pending;not null"`
	RemoteVerified  bool           `gorm:"not null"`
	RemoteSiteID    *string
	IsCustomDomain  bool `gorm:"not null"`
	ErrorMessage    *string
}

func (d *DomainRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if err = d.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if d.Status == "" {
		d.Status = config.StatusPending
	}
	return d.validate()
}

func (d *DomainRecord) validate() error {
	if d.CanonicalDomain == "" {
		return Error{Message: "Domain cannot be blank.", Validation: true}
	}
	if d.OwnerID == "" {
		return Error{Message: "Owner ID cannot be blank.", Validation: true}
	}
	if !config.ValidDomainStatus(d.Status) {
		return Error{Message: "Status must be one of pending, verified or error.", Validation: true}
	}
	return nil
}

// Tombstoned reports whether the owner deleted the record
func (d DomainRecord) Tombstoned() bool {
	return d.DeletedAt.Valid
}
