// Package classify turns raw lead fields into classification labels:
// seniority and persona from the job title, intent from free text, plus the
// e-mail and date normalizers feeding the scoring engine. Every function
// degrades gracefully: malformed input yields the neutral label, never an
// error.
package classify

import (
	"regexp"
	"strings"

	"smartcaller_backend/internal/leads/transport"
)

// seniorityRule maps a title pattern to a seniority label and weight.
// Rules are evaluated in slice order; the first match wins.
type seniorityRule struct {
	pattern *regexp.Regexp
	label   string
	weight  int
}

var seniorityRules = []seniorityRule{
	{regexp.MustCompile(`\b(owner|founder|co-?founder|partner|principal)\b`), transport.SeniorityExec, 3},
	{regexp.MustCompile(`\b(ceo|cto|cfo|coo|cmo|vp|vice president|head of)\b`), transport.SeniorityExec, 3},
	{regexp.MustCompile(`\b(director|director of|directeur|directrice)\b`), transport.SeniorityDirector, 2},
	{regexp.MustCompile(`\b(manager|lead|responsable|chef de)\b`), transport.SeniorityManager, 1},
	{regexp.MustCompile(`\b(intern|stagiaire|assistant|junior)\b`), transport.SeniorityJunior, 0},
}

// personaRule maps a title pattern to a persona label.
// Rules are evaluated in slice order; the first match wins, so the more
// specific functions (finance, ops) come before the generic CEO bucket.
type personaRule struct {
	pattern *regexp.Regexp
	persona string
}

var personaRules = []personaRule{
	{regexp.MustCompile(`\b(cfo|finance|accounting|comptable|daf)\b`), "CFO"},
	{regexp.MustCompile(`\b(coo|ops|operation|logistics|logistique|supply)\b`), "COO"},
	{regexp.MustCompile(`\b(cmo|marketing|growth|demand gen|acquisition)\b`), "Marketing"},
	{regexp.MustCompile(`\b(cto|tech|developer|engineer|it|devops|sre)\b`), "Tech"},
	{regexp.MustCompile(`\b(ceo|founder|owner|pdg|gérant)\b`), "CEO"},
	{regexp.MustCompile(`\b(sales|commercial|account executive|ae|business developer|bdm)\b`), "Sales"},
	{regexp.MustCompile(`\b(customer success|cs|support client|success manager)\b`), "Customer Success"},
	{regexp.MustCompile(`\b(product|pm|product manager)\b`), "Product"},
	{regexp.MustCompile(`\b(data|analytics|bi|data scientist|data engineer)\b`), "Data"},
	{regexp.MustCompile(`\b(security|secops|ciso|iso 27001)\b`), "Security"},
	{regexp.MustCompile(`\b(legal|juridique|avocat|counsel)\b`), "Legal"},
	{regexp.MustCompile(`\b(hr|talent|recruit|rh|recruteur|recrutement)\b`), "HR"},
	{regexp.MustCompile(`\b(purchasing|achat|procurement|acheteur)\b`), "Procurement"},
}

// Intent keyword lists. Demo keywords are checked before resource keywords;
// matching is plain substring on the lower-cased source+form+message text.
var demoKeywords = []string{
	"demo", "démo", "book a call", "book a demo", "rdv", "call", "meeting", "schedule",
	"contact me", "contactez-moi", "prise de rendez-vous", "essai gratuit", "trial",
}

var resourceKeywords = []string{
	"ebook", "guide", "checklist", "whitepaper", "webinar", "replay", "ressource", "lead magnet", "template",
}

var urgencyKeywords = []string{
	"urgent", "asap", "dès que possible", "rapidement", "au plus vite", "now", "this week", "ce jour",
}

// sourceWeights maps an acquisition channel (lower-cased) to its score bonus.
var sourceWeights = map[string]int{
	"meta": 6, "facebook": 6, "instagram": 6,
	"google": 7, "adwords": 7, "gads": 7,
	"linkedin": 5, "typeform": 4, "webflow": 3,
}

// freeEmailDomains are consumer e-mail providers; anything else counts as a
// business address.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"live.com":       {},
	"icloud.com":     {},
	"proton.me":      {},
	"protonmail.com": {},
}

// SourceWeight returns the score bonus for an acquisition channel,
// 0 for unknown channels. Lookup is case-insensitive.
func SourceWeight(source string) int {
	return sourceWeights[strings.ToLower(source)]
}

// HasUrgency reports whether the message contains an urgency keyword.
func HasUrgency(message string) bool {
	lowered := strings.ToLower(message)
	for _, kw := range urgencyKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
