// Package domainname canonicalizes and validates custom domain strings.
package domainname

import (
	"regexp"
	"strings"
)

const maxDomainLength = 253

var (
	// a scheme is stripped only when followed by "//", or for mailto:, so host:port input is kept whole
	schemeRegex = regexp.MustCompile(`^(?:[a-z][a-z0-9+.\-]*://|mailto:)`)
	labelRegex  = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)
	tldRegex    = regexp.MustCompile(`^[a-z]{2,63}$`)
)

// Normalize returns the canonical comparison key for a domain: trimmed,
// lowercased, without scheme, leading "www." or trailing slash. It never
// fails, malformed input is returned in its best-effort canonical form.
func Normalize(raw string) string {
	domain := strings.ToLower(strings.TrimSpace(raw))
	domain = schemeRegex.ReplaceAllString(domain, "")
	domain = strings.TrimPrefix(domain, "www.")
	domain = strings.TrimRight(domain, "/")
	return strings.TrimSpace(domain)
}

// IsValidFormat reports whether the canonical form of raw is a plausible
// hostname: alphanumeric labels, no leading or trailing hyphens, at least
// one dot and an alphabetic TLD of two or more letters.
func IsValidFormat(raw string) bool {
	domain := Normalize(raw)
	if domain == "" || len(domain) > maxDomainLength {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels[:len(labels)-1] {
		if !labelRegex.MatchString(label) {
			return false
		}
	}
	return tldRegex.MatchString(labels[len(labels)-1])
}

// NormalizeAll canonicalizes a list of domains, dropping empty results and
// duplicates while keeping first-seen order.
func NormalizeAll(raws ...string) []string {
	seen := make(map[string]struct{}, len(raws))
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		domain := Normalize(raw)
		if domain == "" {
			continue
		}
		if _, ok := seen[domain]; ok {
			continue
		}
		seen[domain] = struct{}{}
		out = append(out, domain)
	}
	return out
}
