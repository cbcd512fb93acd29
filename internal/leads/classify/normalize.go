package classify

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// createdAtLayouts are the accepted created_at formats, tried in order.
// The first successful parse wins; timestamps are interpreted as UTC.
var createdAtLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
}

// EmailDomain returns the lower-cased domain part of an e-mail address,
// or "" when the input has no "@".
func EmailDomain(email string) string {
	idx := strings.Index(email, "@")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(email[idx+1:]))
}

// IsBusinessEmail reports whether the address has a domain that is not a
// known consumer e-mail provider. Addresses without a domain are not
// business addresses.
func IsBusinessEmail(email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	_, free := freeEmailDomains[domain]
	return !free
}

// DomainToCompany derives a display company name from the e-mail domain's
// registrable second-level label, capitalized ("a@acme.io" → "Acme").
// An explicit fallback company always wins over the derived brand; when the
// e-mail has no domain the fallback is returned unchanged.
func DomainToCompany(email, fallbackCompany string) string {
	domain := EmailDomain(email)
	if domain == "" {
		return fallbackCompany
	}
	if fallbackCompany != "" {
		return fallbackCompany
	}
	return capitalize(brandLabel(domain))
}

// brandLabel extracts the second-level label of the registrable domain,
// e.g. "mail.co.uk" → "mail", "acme.io" → "acme". When the public suffix
// list cannot resolve the domain, the first label is used as-is.
func brandLabel(domain string) string {
	base := domain
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil {
		base = etld1
	}
	if idx := strings.IndexByte(base, '.'); idx > 0 {
		return base[:idx]
	}
	return base
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	_, size := utf8.DecodeRuneInString(value)
	return strings.ToUpper(value[:size]) + strings.ToLower(value[size:])
}

// DaysSince returns the whole days elapsed since the given timestamp,
// floored at 0, or nil when the value matches none of the accepted formats.
func DaysSince(value string) *int {
	return DaysSinceAt(value, time.Now().UTC())
}

// DaysSinceAt is DaysSince with an explicit reference time.
func DaysSinceAt(value string, now time.Time) *int {
	if value == "" {
		return nil
	}

	for _, layout := range createdAtLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err != nil {
			continue
		}
		days := int(now.UTC().Sub(parsed) / (24 * time.Hour))
		if days < 0 {
			days = 0
		}
		return &days
	}
	return nil
}
