package reconcile

import (
	"sort"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/content-services/domain-sync-backend/pkg/utils"
)

// StatusEntries reports the sync state of every domain known locally or
// remotely, sorted by domain. A remote domain the owner deleted locally is a
// conflict: reconciliation will not bring it back.
func StatusEntries(local []models.DomainRecord, tombstoned []models.DomainRecord, site api.SiteInfo, lastSync *time.Time) []api.SyncStatusEntry {
	plan := BuildPlan(local, tombstoned, site)
	remoteSet := make(map[string]struct{}, len(plan.RemoteDomains))
	for _, domain := range plan.RemoteDomains {
		remoteSet[domain] = struct{}{}
	}

	entries := make([]api.SyncStatusEntry, 0, len(plan.Classifications))
	seen := make(map[string]struct{}, len(local))
	for _, record := range local {
		domain := domainname.Normalize(record.CanonicalDomain)
		if _, ok := seen[domain]; ok {
			continue
		}
		seen[domain] = struct{}{}
		_, remote := remoteSet[domain]
		entry := api.SyncStatusEntry{
			Domain:         domain,
			LocalPresence:  api.PresenceExists,
			RemotePresence: presence(remote),
			SyncState:      api.SyncStateNeedsSync,
			LastSync:       lastSync,
			ErrorMessage:   utils.Deref(record.ErrorMessage),
		}
		if plan.Classifications[domain] == InSync {
			entry.SyncState = api.SyncStateInSync
		}
		entries = append(entries, entry)
	}

	for _, domain := range plan.RemoteDomains {
		if _, ok := seen[domain]; ok {
			continue
		}
		entry := api.SyncStatusEntry{
			Domain:         domain,
			LocalPresence:  api.PresenceMissing,
			RemotePresence: api.PresenceExists,
			SyncState:      api.SyncStateNeedsSync,
			LastSync:       lastSync,
		}
		if plan.Classifications[domain] == Tombstoned {
			entry.SyncState = api.SyncStateConflict
			entry.ErrorMessage = "Domain was deleted locally but is still attached to the remote site"
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Domain < entries[j].Domain })
	return entries
}

func presence(exists bool) string {
	if exists {
		return api.PresenceExists
	}
	return api.PresenceMissing
}
