package api

import (
	"encoding/json"
	"time"
)

// SyncAuditResponse holds one recorded reconciliation run
type SyncAuditResponse struct {
	UUID          string          `json:"uuid"`           // UUID of the audit record
	OrgID         string          `json:"org_id"`         // Organization ID of the owner
	Operation     string          `json:"operation"`      // Operation recorded
	Success       bool            `json:"success"`        // Whether the run succeeded
	Message       string          `json:"message"`        // Summary of the run
	Error         string          `json:"error"`          // Fatal error of the run
	RemoteDomains json.RawMessage `json:"remote_domains"` // Remote domain set seen by the run
	LocalDomains  json.RawMessage `json:"local_domains"`  // Local domains seen by the run
	Changes       json.RawMessage `json:"changes"`        // Planned actions and their outcomes
	SiteInfo      json.RawMessage `json:"site_info"`      // Remote site metadata
	DurationMs    int64           `json:"duration_ms"`    // Run duration in milliseconds
	CreatedAt     time.Time       `json:"created_at"`     // Time of the run
}

type SyncAuditCollectionResponse struct {
	Data  []SyncAuditResponse `json:"data"`  // Requested Data
	Meta  ResponseMetadata    `json:"meta"`  // Metadata about the request
	Links Links               `json:"links"` // Links to other pages of results
}

func (s *SyncAuditCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	s.Meta = meta
	s.Links = links
}
