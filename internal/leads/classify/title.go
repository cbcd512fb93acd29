package classify

import (
	"strings"

	"smartcaller_backend/internal/leads/transport"
)

// ParseTitle classifies a free-text job title into a seniority label, a
// seniority weight and a persona. Unmatched titles yield ("other", 0,
// "Other"). Both scans run over the same lower-cased text and stop at the
// first matching rule.
func ParseTitle(title string) (seniority string, weight int, persona string) {
	lowered := strings.ToLower(title)

	seniority, weight = transport.SeniorityOther, 0
	for _, rule := range seniorityRules {
		if rule.pattern.MatchString(lowered) {
			seniority, weight = rule.label, rule.weight
			break
		}
	}

	persona = transport.PersonaOther
	for _, rule := range personaRules {
		if rule.pattern.MatchString(lowered) {
			persona = rule.persona
			break
		}
	}

	return seniority, weight, persona
}
