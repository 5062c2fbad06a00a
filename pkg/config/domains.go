package config

import "github.com/content-services/domain-sync-backend/pkg/utils"

// Domain record statuses
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusError    = "error"
)

// OrphanedDomainMessage is stored on records whose domain vanished from the remote registry
const OrphanedDomainMessage = "Domain no longer exists in remote registry"

var DomainStatuses = []string{StatusPending, StatusVerified, StatusError}

func ValidDomainStatus(status string) bool {
	return utils.Contains(DomainStatuses, status)
}
