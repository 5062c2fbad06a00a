package api

import "time"

const (
	PresenceExists  = "exists"
	PresenceMissing = "missing"
)

const (
	SyncStateInSync    = "inSync"
	SyncStateNeedsSync = "needsSync"
	SyncStateConflict  = "conflict"
)

// SyncDetails lists the domains touched by a reconciliation run
type SyncDetails struct {
	Added   []string `json:"added"`   // Domains inserted from the remote registry
	Updated []string `json:"updated"` // Domains promoted or marked orphaned
	Removed []string `json:"removed"` // Always empty, reconciliation never deletes
	Errors  []string `json:"errors"`  // Per-action failures
}

// SyncResult is the outcome of one reconciliation run
type SyncResult struct {
	Success bool         `json:"success"`           // True when the run completed without any error
	Message string       `json:"message"`           // Human readable summary
	Details *SyncDetails `json:"details,omitempty"` // Structured report, absent when the run aborted
	Error   string       `json:"error,omitempty"`   // Fatal error that aborted the run
}

// SyncStatusEntry describes how one domain compares between the local store and the remote registry
type SyncStatusEntry struct {
	Domain         string     `json:"domain"`                  // Canonical domain
	LocalPresence  string     `json:"local_presence"`          // exists or missing
	RemotePresence string     `json:"remote_presence"`         // exists or missing
	SyncState      string     `json:"sync_state"`              // inSync, needsSync or conflict
	LastSync       *time.Time `json:"last_sync,omitempty"`     // Time of the last recorded reconciliation run
	ErrorMessage   string     `json:"error_message,omitempty"` // Diagnostic of the local record
}

type SyncStatusResponse struct {
	Data     []SyncStatusEntry `json:"data"`      // Status of every known domain
	SiteInfo *SiteInfo         `json:"site_info"` // Remote snapshot the status was computed from
}
