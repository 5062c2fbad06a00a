package api

import "time"

// DomainRequest holds data received to add a custom domain
type DomainRequest struct {
	Domain string `json:"domain" validate:"required"` // Domain to attach, any scheme, www. prefix or trailing slash is removed
}

// DomainResponse holds data returned by a domains API response
type DomainResponse struct {
	UUID           string    `json:"uuid"`             // UUID of the domain record
	Domain         string    `json:"domain"`           // Canonical domain name
	OrgID          string    `json:"org_id"`           // Organization ID of the owner
	Status         string    `json:"status"`           // Status of the domain (pending, verified, error)
	RemoteVerified bool      `json:"remote_verified"`  // Whether the remote registry currently reports this domain
	RemoteSiteID   string    `json:"remote_site_id"`   // Remote site the domain is attached to
	IsCustomDomain bool      `json:"is_custom_domain"` // Whether the domain is the site's primary custom domain
	ErrorMessage   string    `json:"error_message"`    // Diagnostic when status is error
	CreatedAt      time.Time `json:"created_at"`       // Timestamp of record creation
	UpdatedAt      time.Time `json:"updated_at"`       // Timestamp of last update
}

type DomainCollectionResponse struct {
	Data  []DomainResponse `json:"data"`  // Requested Data
	Meta  ResponseMetadata `json:"meta"`  // Metadata about the request
	Links Links            `json:"links"` // Links to other pages of results
}

func (d *DomainCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	d.Meta = meta
	d.Links = links
}
