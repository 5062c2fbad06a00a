package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DomainSyncAudit is an append-only record of one reconciliation run
type DomainSyncAudit struct {
	Base
	OwnerID       string `gorm:"index;not null"`
	Operation     string `gorm:"not null"`
	Success       bool
	Message       string
	Error         string
	RemoteDomains datatypes.JSON
	LocalDomains  datatypes.JSON
	Changes       datatypes.JSON
	SiteInfo      datatypes.JSON
	DurationMs    int64
}

func (a *DomainSyncAudit) BeforeCreate(tx *gorm.DB) (err error) {
	if err = a.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if a.OwnerID == "" {
		return Error{Message: "Owner ID cannot be blank.", Validation: true}
	}
	if a.Operation == "" {
		return Error{Message: "Operation cannot be blank.", Validation: true}
	}
	return nil
}
