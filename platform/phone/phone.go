// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// countryPrefix maps an ISO country code to its international dialing prefix.
// The slice order is the lookup order: first matching prefix wins, so more
// specific prefixes must come before "+1".
type countryPrefix struct {
	Country string
	Prefix  string
}

var countryPrefixes = []countryPrefix{
	{"FR", "+33"},
	{"BE", "+32"},
	{"CH", "+41"},
	{"ES", "+34"},
	{"IT", "+39"},
	{"DE", "+49"},
	{"UK", "+44"},
	{"US", "+1"},
}

// CountryFromPhone resolves the country code of an international phone
// number by its dialing prefix. Numbers that parse as valid international
// numbers are canonicalized to E.164 first, so formatting noise does not
// affect the lookup. National formats are never attributed to a region;
// the empty string means no match.
func CountryFromPhone(input string) string {
	normalized := normalize(input)
	if normalized == "" {
		return ""
	}

	for _, entry := range countryPrefixes {
		if strings.HasPrefix(normalized, entry.Prefix) {
			return entry.Country
		}
	}
	return ""
}

// normalize strips spaces and, when the input carries an explicit "+"
// country prefix, reformats it through libphonenumber to E.164.
func normalize(input string) string {
	stripped := strings.ReplaceAll(strings.TrimSpace(input), " ", "")
	if stripped == "" || !strings.HasPrefix(stripped, "+") {
		return stripped
	}

	// No default region on purpose: only numbers that already carry a
	// country prefix may be canonicalized.
	number, err := phonenumbers.Parse(stripped, "")
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return stripped
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
