// Package scoring computes the fit score and workflow suggestion for a
// classified lead. The model is a deterministic additive one: an intent base
// plus weighted bonuses for seniority, persona, e-mail quality, channel and
// recency, clamped to [0, 95].
package scoring

import (
	"time"
	"unicode/utf8"

	"smartcaller_backend/internal/leads/classify"
	"smartcaller_backend/internal/leads/transport"
	"smartcaller_backend/platform/config"
	"smartcaller_backend/platform/phone"
)

// Workflow labels suggested per lead.
const (
	WorkflowFastResponse  = "Réponse rapide"
	WorkflowSoftNurturing = "Nurturing doux"
	WorkflowSafeHours     = "Safe hours"
)

// Score bounds and thresholds.
const (
	scoreMin = 0
	scoreMax = 95

	fastResponseThreshold  = 68
	softNurturingThreshold = 58
)

// Intent base scores.
const (
	baseDemo     = 65
	baseResource = 50
	baseOther    = 42
)

// Input carries the lead fields the scoring model reads. SeniorityWeight and
// Persona come from title classification, Intent from free-text
// classification; the rest are raw record fields.
type Input struct {
	Intent          string
	SeniorityWeight int
	Persona         string
	Email           string
	Phone           string
	CompanyName     string
	Message         string
	Source          string
	UTMSource       string
	CreatedAt       string
}

// Engine scores leads against the configured target personas and priority
// countries.
type Engine struct {
	targetPersonas    map[string]struct{}
	priorityCountries map[string]struct{}
	now               func() time.Time
}

// NewEngine builds an engine from the classification rule configuration.
func NewEngine(cfg config.RulesConfig) *Engine {
	return &Engine{
		targetPersonas:    toSet(cfg.GetTargetPersonas()),
		priorityCountries: toSet(cfg.GetPriorityCountries()),
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Score computes the fit score for one lead, clamped to [0, 95].
func (e *Engine) Score(in Input) int {
	score := baseOther
	switch in.Intent {
	case transport.IntentDemo:
		score = baseDemo
	case transport.IntentResource:
		score = baseResource
	}

	score += 8 * in.SeniorityWeight

	if _, ok := e.targetPersonas[in.Persona]; ok {
		score += 6
	}

	if classify.IsBusinessEmail(in.Email) {
		score += 5
	} else {
		score -= 4
	}

	if company := classify.DomainToCompany(in.Email, in.CompanyName); utf8.RuneCountInString(company) >= 2 {
		score += 3
	}

	score += classify.SourceWeight(in.Source)
	score += classify.SourceWeight(in.UTMSource)

	if classify.HasUrgency(in.Message) {
		score += 6
	}

	if country := phone.CountryFromPhone(in.Phone); country != "" {
		if _, ok := e.priorityCountries[country]; ok {
			score += 3
		}
	}

	if days := classify.DaysSinceAt(in.CreatedAt, e.now()); days != nil {
		switch {
		case *days <= 1:
			score += 6
		case *days <= 7:
			score += 2
		case *days > 30:
			score -= 4
		}
	}

	return clamp(score)
}

// SuggestWorkflow picks the outreach workflow for a scored lead. High-scoring
// demo requests get the fast lane, warm resource leads get nurturing,
// everything else falls back to safe calling hours.
func (e *Engine) SuggestWorkflow(intent string, score int) string {
	if intent == transport.IntentDemo && score >= fastResponseThreshold {
		return WorkflowFastResponse
	}
	if intent == transport.IntentResource && score >= softNurturingThreshold {
		return WorkflowSoftNurturing
	}
	return WorkflowSafeHours
}

func clamp(score int) int {
	if score < scoreMin {
		return scoreMin
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
