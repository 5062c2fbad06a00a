package reconcile

import (
	"sort"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	"github.com/content-services/domain-sync-backend/pkg/models"
)

// ActionKind is the corrective action planned for one domain
type ActionKind string

const (
	// ActionInsert creates a local record for a remote-only domain
	ActionInsert ActionKind = "insert"
	// ActionPromote marks an existing local record as verified remotely
	ActionPromote ActionKind = "promote"
	// ActionOrphan flags a verified record whose domain left the registry
	ActionOrphan ActionKind = "orphan"
)

// Classification is the sync state of one domain between the two snapshots
type Classification string

const (
	RemoteOnly     Classification = "remote-only"
	NeedsPromotion Classification = "needs-promotion"
	InSync         Classification = "in-sync"
	Orphaned       Classification = "orphaned"
	LocalOnly      Classification = "local-only"
	Tombstoned     Classification = "tombstoned"
)

type Action struct {
	Kind           ActionKind
	Domain         string
	RecordUUID     string
	SiteID         string
	IsCustomDomain bool
}

// Plan is the outcome of classifying one local snapshot against one remote snapshot
type Plan struct {
	// Actions in apply order: inserts, then promotions, then orphans.
	// Each group is sorted by domain.
	Actions         []Action
	Classifications map[string]Classification
	RemoteDomains   []string
	LocalDomains    []string
}

// BuildPlan classifies every domain known to either side and derives the
// ordered list of actions bringing the local records in line with the registry.
// Domains the owner deleted locally are never re-inserted.
func BuildPlan(local []models.DomainRecord, tombstoned []models.DomainRecord, site api.SiteInfo) Plan {
	remoteDomains := domainname.NormalizeAll(site.Domains()...)
	remoteSet := make(map[string]struct{}, len(remoteDomains))
	for _, domain := range remoteDomains {
		remoteSet[domain] = struct{}{}
	}
	customDomain := domainname.Normalize(site.CustomDomain)

	plan := Plan{
		Classifications: make(map[string]Classification, len(local)+len(remoteDomains)),
		RemoteDomains:   sortedCopy(remoteDomains),
		LocalDomains:    make([]string, 0, len(local)),
	}

	var inserts, promotions, orphans []Action
	localSet := make(map[string]struct{}, len(local))
	for _, record := range local {
		domain := domainname.Normalize(record.CanonicalDomain)
		if _, seen := localSet[domain]; seen {
			continue
		}
		localSet[domain] = struct{}{}
		plan.LocalDomains = append(plan.LocalDomains, domain)

		_, remote := remoteSet[domain]
		switch {
		case remote && !record.RemoteVerified:
			plan.Classifications[domain] = NeedsPromotion
			promotions = append(promotions, Action{
				Kind:           ActionPromote,
				Domain:         domain,
				RecordUUID:     record.UUID,
				SiteID:         site.SiteID,
				IsCustomDomain: domain == customDomain,
			})
		case remote:
			plan.Classifications[domain] = InSync
		case record.RemoteVerified:
			plan.Classifications[domain] = Orphaned
			orphans = append(orphans, Action{
				Kind:       ActionOrphan,
				Domain:     domain,
				RecordUUID: record.UUID,
			})
		default:
			plan.Classifications[domain] = LocalOnly
		}
	}
	sort.Strings(plan.LocalDomains)

	deleted := make(map[string]struct{}, len(tombstoned))
	for _, record := range tombstoned {
		deleted[domainname.Normalize(record.CanonicalDomain)] = struct{}{}
	}

	for _, domain := range remoteDomains {
		if _, ok := localSet[domain]; ok {
			continue
		}
		if _, ok := deleted[domain]; ok {
			plan.Classifications[domain] = Tombstoned
			continue
		}
		plan.Classifications[domain] = RemoteOnly
		inserts = append(inserts, Action{
			Kind:           ActionInsert,
			Domain:         domain,
			SiteID:         site.SiteID,
			IsCustomDomain: domain == customDomain,
		})
	}

	for _, group := range [][]Action{inserts, promotions, orphans} {
		sort.Slice(group, func(i, j int) bool { return group[i].Domain < group[j].Domain })
		plan.Actions = append(plan.Actions, group...)
	}
	return plan
}

// Empty reports whether the plan has nothing to apply
func (p Plan) Empty() bool {
	return len(p.Actions) == 0
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
