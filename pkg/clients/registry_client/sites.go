package registry_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/cache"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type siteResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	SslURL        string   `json:"ssl_url"`
	CustomDomain  *string  `json:"custom_domain"`
	DomainAliases []string `json:"domain_aliases"`
	State         string   `json:"state"`
}

type siteAliasesRequest struct {
	DomainAliases []string `json:"domain_aliases"`
}

func (s siteResponse) toSiteInfo() api.SiteInfo {
	info := api.SiteInfo{
		SiteID:        s.ID,
		Name:          s.Name,
		URL:           s.URL,
		SslURL:        s.SslURL,
		DomainAliases: s.DomainAliases,
		State:         s.State,
	}
	if s.CustomDomain != nil {
		info.CustomDomain = *s.CustomDomain
	}
	if info.DomainAliases == nil {
		info.DomainAliases = []string{}
	}
	return info
}

func (rc registryClientImpl) GetSiteInfo(ctx context.Context) (api.SiteInfo, error) {
	site, err := rc.fetchSite(ctx, "get_site_info")
	if err != nil {
		return api.SiteInfo{}, err
	}
	info := site.toSiteInfo()
	rc.storeSiteInfo(ctx, info)
	return info, nil
}

func (rc registryClientImpl) CachedSiteInfo(ctx context.Context) (api.SiteInfo, error) {
	if rc.cache != nil {
		cacheHit, err := rc.cache.GetSiteInfo(ctx, rc.siteID)
		if err != nil && !errors.Is(err, cache.NotFound) {
			log.Ctx(ctx).Error().Err(err).Msg("siteInfo: error reading from cache")
		}
		if cacheHit != nil {
			return *cacheHit, nil
		}
	}
	return rc.GetSiteInfo(ctx)
}

// RequestAddDomain attaches domain to the site as an alias. A domain that is
// already attached is accepted without modifying the site.
func (rc registryClientImpl) RequestAddDomain(ctx context.Context, domain string, localID string) (AddDomainResult, error) {
	canonical := domainname.Normalize(domain)
	site, err := rc.fetchSite(ctx, "add_domain")
	if err != nil {
		return AddDomainResult{}, err
	}

	info := site.toSiteInfo()
	if containsDomain(info.Domains(), canonical) {
		log.Ctx(ctx).Debug().Str("domain", canonical).Str("domain_uuid", localID).Msg("domain already attached to site")
		return AddDomainResult{Accepted: true, AlreadyAttached: true, SiteInfo: &info}, nil
	}

	aliases := append(append([]string{}, info.DomainAliases...), canonical)
	updated, err := rc.patchAliases(ctx, "add_domain", aliases)
	if err != nil {
		return AddDomainResult{}, err
	}
	updatedInfo := updated.toSiteInfo()
	rc.invalidateSiteInfo(ctx)

	log.Ctx(ctx).Info().Str("domain", canonical).Str("domain_uuid", localID).Msg("domain attached to site")
	return AddDomainResult{Accepted: containsDomain(updatedInfo.Domains(), canonical), SiteInfo: &updatedInfo}, nil
}

// RemoveDomain detaches an alias from the site. The primary custom domain is never removed.
func (rc registryClientImpl) RemoveDomain(ctx context.Context, domain string) (RemoveDomainResult, error) {
	canonical := domainname.Normalize(domain)
	site, err := rc.fetchSite(ctx, "remove_domain")
	if err != nil {
		return RemoveDomainResult{}, err
	}

	info := site.toSiteInfo()
	if info.CustomDomain != "" && domainname.Normalize(info.CustomDomain) == canonical {
		return RemoveDomainResult{Message: fmt.Sprintf("Domain %s is the primary custom domain and was not removed", canonical), SiteInfo: &info}, nil
	}

	remaining := make([]string, 0, len(info.DomainAliases))
	for _, alias := range info.DomainAliases {
		if domainname.Normalize(alias) != canonical {
			remaining = append(remaining, alias)
		}
	}
	if len(remaining) == len(info.DomainAliases) {
		return RemoveDomainResult{Message: fmt.Sprintf("Domain %s not found", canonical), SiteInfo: &info}, nil
	}

	updated, err := rc.patchAliases(ctx, "remove_domain", remaining)
	if err != nil {
		return RemoveDomainResult{}, err
	}
	updatedInfo := updated.toSiteInfo()
	rc.invalidateSiteInfo(ctx)
	return RemoveDomainResult{Removed: true, SiteInfo: &updatedInfo}, nil
}

// TestConnection checks that the site can be read, it does not return an error
func (rc registryClientImpl) TestConnection(ctx context.Context) api.RegistryConnectionResponse {
	info, err := rc.GetSiteInfo(ctx)
	if err != nil {
		return api.RegistryConnectionResponse{Reachable: false, Error: err.Error()}
	}
	return connectionResponse(info)
}

func (rc registryClientImpl) CheckDomain(ctx context.Context, domain string) (api.DomainCheckResponse, error) {
	canonical := domainname.Normalize(domain)
	info, err := rc.GetSiteInfo(ctx)
	if err != nil {
		return api.DomainCheckResponse{}, err
	}
	return api.DomainCheckResponse{
		Domain:         canonical,
		Exists:         containsDomain(info.Domains(), canonical),
		IsCustomDomain: info.CustomDomain != "" && domainname.Normalize(info.CustomDomain) == canonical,
	}, nil
}

func connectionResponse(info api.SiteInfo) api.RegistryConnectionResponse {
	return api.RegistryConnectionResponse{
		Reachable:       true,
		SiteName:        info.Name,
		DomainCount:     len(info.Domains()),
		HasCustomDomain: info.CustomDomain != "",
		SslEnabled:      info.SslURL != "",
		SiteInfo:        &info,
	}
}

func containsDomain(domains []string, canonical string) bool {
	for _, d := range domains {
		if domainname.Normalize(d) == canonical {
			return true
		}
	}
	return false
}

func (rc registryClientImpl) siteURL() string {
	return fmt.Sprintf("%s/sites/%s", rc.server, rc.siteID)
}

func (rc registryClientImpl) fetchSite(ctx context.Context, op string) (siteResponse, error) {
	return rc.doSiteRequest(ctx, op, http.MethodGet, nil)
}

func (rc registryClientImpl) patchAliases(ctx context.Context, op string, aliases []string) (siteResponse, error) {
	body, err := json.Marshal(siteAliasesRequest{DomainAliases: aliases})
	if err != nil {
		return siteResponse{}, &RegistryError{Op: op, Err: err}
	}
	return rc.doSiteRequest(ctx, op, http.MethodPatch, body)
}

func (rc registryClientImpl) doSiteRequest(ctx context.Context, op string, method string, payload []byte) (siteResponse, error) {
	if rc.token == "" || rc.siteID == "" {
		return siteResponse{}, &RegistryError{Op: op, Message: "registry token and site id must be configured"}
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rc.siteURL(), reqBody)
	if err != nil {
		return siteResponse{}, &RegistryError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+rc.token)
	req.Header.Set("Content-Type", "application/json")

	var body []byte
	resp, err := rc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return siteResponse{}, newTransportError(op, pkgerrors.Wrap(err, "error during read response body"))
		}
	}
	if err != nil {
		return siteResponse{}, newTransportError(op, pkgerrors.Wrapf(err, "error during %s request", method))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return siteResponse{}, newStatusError(op, resp.StatusCode, body)
	}

	var site siteResponse
	err = json.Unmarshal(body, &site)
	if err != nil {
		return siteResponse{}, &RegistryError{Op: op, StatusCode: resp.StatusCode, Err: pkgerrors.Wrap(err, "error during unmarshal response body")}
	}
	return site, nil
}

func (rc registryClientImpl) storeSiteInfo(ctx context.Context, info api.SiteInfo) {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.SetSiteInfo(ctx, rc.siteID, info); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("siteInfo: error writing to cache")
	}
}

func (rc registryClientImpl) invalidateSiteInfo(ctx context.Context) {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.DeleteSiteInfo(ctx, rc.siteID); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("siteInfo: error invalidating cache")
	}
}
