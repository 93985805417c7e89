package reliability

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"sourcescore/internal/domain"
)

// NormalizeDomain lowercases a host name, trims whitespace and a trailing dot,
// and strips one leading "www.".
func NormalizeDomain(name string) string {
	d := strings.ToLower(strings.TrimSpace(name))
	d = strings.TrimSuffix(d, ".")
	return strings.TrimPrefix(d, "www.")
}

// DomainFromURL extracts the normalized host from rawurl. It returns "" when
// rawurl has no host.
func DomainFromURL(rawurl string) string {
	rawurl = strings.TrimSpace(rawurl)
	if rawurl == "" {
		return ""
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return NormalizeDomain(u.Hostname())
}

// ResolveDomain derives the domain to score from a request: the explicit
// domain first, then the URL, then the citation URL.
func ResolveDomain(req domain.ScoreRequest) (string, error) {
	if d := NormalizeDomain(req.Domain); d != "" {
		return d, nil
	}
	if d := DomainFromURL(req.URL); d != "" {
		return d, nil
	}
	if req.Metadata != nil {
		if d := DomainFromURL(req.Metadata.URL); d != "" {
			return d, nil
		}
	}
	return "", domain.ErrMissingDomain
}

// IsHostName reports whether a normalized domain looks like a host name:
// non-empty, no URL punctuation or whitespace, no empty labels.
func IsHostName(d string) bool {
	if d == "" || strings.ContainsAny(d, " \t\r\n/\\:?#@") {
		return false
	}
	for _, label := range strings.Split(d, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

var ErrInvalidRecord = errors.New("invalid reliability record")

// ValidateRecord normalizes rec for storage. Records keyed on a bare public
// suffix ("com", "co.uk") are rejected: through ancestor fallback they would
// rate every domain beneath them.
func ValidateRecord(rec domain.ReliabilityRecord) (domain.ReliabilityRecord, error) {
	rec.Domain = NormalizeDomain(rec.Domain)
	rec.Label = strings.TrimSpace(rec.Label)
	rec.Notes = strings.TrimSpace(rec.Notes)
	if rec.Domain == "" {
		return rec, fmt.Errorf("%w: empty domain", ErrInvalidRecord)
	}
	if !IsHostName(rec.Domain) {
		return rec, fmt.Errorf("%w: %q is not a host name", ErrInvalidRecord, rec.Domain)
	}
	if rec.Label == "" {
		return rec, fmt.Errorf("%w: %s has no label", ErrInvalidRecord, rec.Domain)
	}
	if suffix, _ := publicsuffix.PublicSuffix(rec.Domain); suffix == rec.Domain {
		return rec, fmt.Errorf("%w: %s is a public suffix", ErrInvalidRecord, rec.Domain)
	}
	return rec, nil
}
