package reconcile

import (
	"context"
	"fmt"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/content-services/domain-sync-backend/pkg/utils"
	"github.com/rs/zerolog/log"
)

const MessageNotAccepted = "Remote registry did not accept the domain"

// AddDomain stores the domain as pending and then asks the registry to attach
// it. A registry failure is recorded on the record rather than returned. A
// record already verified remotely is never downgraded.
func (r *reconcilerImpl) AddDomain(ctx context.Context, ownerID string, rawDomain string) (api.DomainResponse, error) {
	var response api.DomainResponse
	if !domainname.IsValidFormat(rawDomain) {
		return response, ce.NewSyncError(ce.ValidationError, fmt.Sprintf("Invalid domain format: %q", rawDomain), nil)
	}
	domain := domainname.Normalize(rawDomain)

	record, verified, err := r.liveRecord(ctx, ownerID, domain)
	if err != nil {
		return response, err
	}
	if !verified {
		if record, err = r.daoReg.Domain.Upsert(ctx, ownerID, domain, dao.DomainUpsert{Status: config.StatusPending}); err != nil {
			return response, err
		}
	}

	update := dao.DomainStatusUpdate{}
	added, addErr := r.client.RequestAddDomain(ctx, domain, record.UUID)
	switch {
	case verified && (addErr != nil || !added.Accepted):
		// a remote-verified record is left as is, the next reconcile settles it
		log.Ctx(ctx).Warn().Err(addErr).Str("domain", domain).Msg("registry did not confirm verified domain")
		dao.DomainModelToApiFields(record, &response)
		return response, nil
	case addErr != nil:
		log.Ctx(ctx).Warn().Err(addErr).Str("domain", domain).Msg("registry rejected domain")
		update.Status = utils.Ptr(config.StatusError)
		update.RemoteVerified = utils.Ptr(false)
		update.ErrorMessage = utils.Ptr(addErr.Error())
	case !added.Accepted:
		update.Status = utils.Ptr(config.StatusError)
		update.RemoteVerified = utils.Ptr(false)
		update.ErrorMessage = utils.Ptr(MessageNotAccepted)
	default:
		update.Status = utils.Ptr(config.StatusVerified)
		update.RemoteVerified = utils.Ptr(true)
		update.ErrorMessage = utils.Ptr("")
		if added.SiteInfo != nil {
			update.RemoteSiteID = optional(added.SiteInfo.SiteID)
			update.IsCustomDomain = utils.Ptr(domainname.Normalize(added.SiteInfo.CustomDomain) == domain)
		}
	}
	if err = r.daoReg.Domain.UpdateStatus(ctx, record.UUID, update); err != nil {
		return response, err
	}

	if record, err = r.daoReg.Domain.Fetch(ctx, ownerID, record.UUID); err != nil {
		return response, err
	}
	dao.DomainModelToApiFields(record, &response)
	return response, nil
}

// liveRecord returns the owner's live record for domain, if any, and whether
// it is already verified remotely
func (r *reconcilerImpl) liveRecord(ctx context.Context, ownerID string, domain string) (models.DomainRecord, bool, error) {
	records, err := r.daoReg.Domain.List(ctx, ownerID)
	if err != nil {
		return models.DomainRecord{}, false, err
	}
	for _, record := range records {
		if record.CanonicalDomain == domain {
			return record, record.RemoteVerified, nil
		}
	}
	return models.DomainRecord{}, false, nil
}

// RemoveDomain tombstones the record. Detaching the alias from the registry is
// best effort, a domain left attached shows up as a conflict in the sync status.
func (r *reconcilerImpl) RemoveDomain(ctx context.Context, ownerID string, uuid string) error {
	record, err := r.daoReg.Domain.Fetch(ctx, ownerID, uuid)
	if err != nil {
		return err
	}
	if err = r.daoReg.Domain.Delete(ctx, ownerID, uuid); err != nil {
		return err
	}
	if !record.RemoteVerified || record.IsCustomDomain {
		return nil
	}

	removed, err := r.client.RemoveDomain(ctx, record.CanonicalDomain)
	logger := log.Ctx(ctx).With().Str("owner_id", ownerID).Str("domain", record.CanonicalDomain).Logger()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to detach domain from registry")
	} else if !removed.Removed {
		logger.Info().Msg(removed.Message)
	}
	return nil
}
