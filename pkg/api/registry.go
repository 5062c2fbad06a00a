package api

// SiteInfo is the remote registry's view of the configured site
type SiteInfo struct {
	SiteID        string   `json:"site_id"`                 // Remote site identifier
	Name          string   `json:"name"`                    // Site name
	URL           string   `json:"url"`                     // Site url
	SslURL        string   `json:"ssl_url"`                 // Site https url
	CustomDomain  string   `json:"custom_domain,omitempty"` // Primary custom domain
	DomainAliases []string `json:"domain_aliases"`          // Additional domains attached to the site
	State         string   `json:"state"`                   // Provider reported state
}

// Domains returns the full remote domain set, custom domain first
func (s SiteInfo) Domains() []string {
	domains := make([]string, 0, len(s.DomainAliases)+1)
	if s.CustomDomain != "" {
		domains = append(domains, s.CustomDomain)
	}
	return append(domains, s.DomainAliases...)
}

// RegistryConnectionResponse holds the result of a registry connectivity check
type RegistryConnectionResponse struct {
	Reachable       bool      `json:"reachable"`         // Whether the registry answered
	SiteName        string    `json:"site_name"`         // Name of the configured site
	DomainCount     int       `json:"domain_count"`      // Number of domains attached to the site
	HasCustomDomain bool      `json:"has_custom_domain"` // Whether the site has a primary custom domain
	SslEnabled      bool      `json:"ssl_enabled"`       // Whether the site serves https
	SiteInfo        *SiteInfo `json:"site_info,omitempty"`
	Error           string    `json:"error,omitempty"` // Failure reason when unreachable
}

// DomainCheckResponse reports whether a domain is attached to the remote site
type DomainCheckResponse struct {
	Domain         string `json:"domain"`           // Canonical domain checked
	Exists         bool   `json:"exists"`           // Whether the remote site lists the domain
	IsCustomDomain bool   `json:"is_custom_domain"` // Whether it is the primary custom domain
}
