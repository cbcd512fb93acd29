// Package transport defines the dashboard wire types.
package transport

// Workflow status row labels.
const (
	StatusSMSSent     = "SMS envoyé"
	StatusAIEmailSent = "Email IA envoyé"
	StatusRepliesIn   = "Réponses reçues"
)

// FreshnessBuckets groups leads by age. The buckets are part of the wire
// contract but not yet computed; every value is null until a created_at
// backfill lands.
type FreshnessBuckets map[string]*int

// NewFreshnessBuckets returns the empty bucket set.
func NewFreshnessBuckets() FreshnessBuckets {
	return FreshnessBuckets{
		"last_24h": nil,
		"last_7d":  nil,
		"last_30d": nil,
		"older":    nil,
	}
}

// WorkflowStatusEntry is one row of the workflow activity table.
type WorkflowStatusEntry struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// Summary is the aggregated view of the last imported batch, served by
// GET /api/dashboard/summary and embedded in the import response.
type Summary struct {
	LeadsTotal            int                   `json:"leads_total"`
	LeadsHot              int                   `json:"leads_hot"`
	ResponseRate          float64               `json:"response_rate"`
	AvgScore              float64               `json:"avg_score"`
	BusinessEmailRatio    float64               `json:"business_email_ratio"`
	IntentDistribution    map[string]int        `json:"intent_distribution"`
	PersonaDistribution   map[string]int        `json:"persona_distribution"`
	SeniorityDistribution map[string]int        `json:"seniority_distribution"`
	CountryDistribution   map[string]int        `json:"country_distribution"`
	WorkflowsDistribution map[string]int        `json:"workflows_distribution"`
	FreshnessBuckets      FreshnessBuckets      `json:"freshness_buckets"`
	WorkflowStatus        []WorkflowStatusEntry `json:"workflow_status"`
	Insights              []string              `json:"insights"`
}

// Default is the payload served before any import has happened.
func Default() Summary {
	return Summary{
		IntentDistribution:    map[string]int{},
		PersonaDistribution:   map[string]int{},
		SeniorityDistribution: map[string]int{},
		CountryDistribution:   map[string]int{},
		WorkflowsDistribution: map[string]int{},
		// Before the first import there is nothing to bucket, not even
		// null placeholders.
		FreshnessBuckets: FreshnessBuckets{},
		WorkflowStatus: []WorkflowStatusEntry{
			{Action: StatusSMSSent, Count: 0},
			{Action: StatusAIEmailSent, Count: 0},
		},
		Insights: []string{"Aucune analyse disponible. Importez d’abord des leads."},
	}
}
