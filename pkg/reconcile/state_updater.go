package reconcile

import (
	"context"
	"fmt"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/utils"
)

// StateUpdater writes one planned action to the local store
//
//go:generate mockery --name StateUpdater --filename state_updater_mock.go --inpackage
type StateUpdater interface {
	Apply(ctx context.Context, ownerID string, action Action) error
}

type storeUpdater struct {
	domains dao.DomainDao
}

func NewStateUpdater(domains dao.DomainDao) StateUpdater {
	return storeUpdater{domains: domains}
}

func (u storeUpdater) Apply(ctx context.Context, ownerID string, action Action) error {
	var err error
	switch action.Kind {
	case ActionInsert:
		_, err = u.domains.Upsert(ctx, ownerID, action.Domain, dao.DomainUpsert{
			Status:         config.StatusVerified,
			RemoteVerified: true,
			RemoteSiteID:   optional(action.SiteID),
			IsCustomDomain: action.IsCustomDomain,
		})
	case ActionPromote:
		err = u.domains.UpdateStatus(ctx, action.RecordUUID, dao.DomainStatusUpdate{
			Status:         utils.Ptr(config.StatusVerified),
			RemoteVerified: utils.Ptr(true),
			RemoteSiteID:   optional(action.SiteID),
			IsCustomDomain: utils.Ptr(action.IsCustomDomain),
			ErrorMessage:   utils.Ptr(""),
		})
	case ActionOrphan:
		err = u.domains.UpdateStatus(ctx, action.RecordUUID, dao.DomainStatusUpdate{
			Status:         utils.Ptr(config.StatusError),
			RemoteVerified: utils.Ptr(false),
			ErrorMessage:   utils.Ptr(config.OrphanedDomainMessage),
		})
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}
	if err != nil {
		return ce.NewSyncError(ce.LocalStoreError, fmt.Sprintf("failed to %s %s", action.Kind, action.Domain), err)
	}
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
