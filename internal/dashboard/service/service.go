// Package service aggregates classified leads into the dashboard summary
// and serves the latest one from the summary store.
package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"smartcaller_backend/internal/dashboard/store"
	"smartcaller_backend/internal/dashboard/transport"
	"smartcaller_backend/internal/events"
	leadtransport "smartcaller_backend/internal/leads/transport"
	"smartcaller_backend/platform/logger"
)

// hotThreshold is the minimum score for a lead to count as hot.
const hotThreshold = 70

// Service builds and serves dashboard summaries.
type Service struct {
	store   store.SummaryStore
	metrics MetricsProvider
	log     *logger.Logger
}

// NewService creates the dashboard service.
func NewService(st store.SummaryStore, metrics MetricsProvider, log *logger.Logger) *Service {
	return &Service{store: st, metrics: metrics, log: log}
}

// Summarize aggregates one classified batch into a summary. An empty batch
// yields zero rates rather than simulated ones.
func (s *Service) Summarize(leads []leadtransport.ClassifiedLead) transport.Summary {
	total := len(leads)

	summary := transport.Summary{
		LeadsTotal:            total,
		IntentDistribution:    map[string]int{},
		PersonaDistribution:   map[string]int{},
		SeniorityDistribution: map[string]int{},
		CountryDistribution:   map[string]int{},
		WorkflowsDistribution: map[string]int{},
		FreshnessBuckets:      transport.NewFreshnessBuckets(),
	}

	scoreSum := 0
	businessCount := 0
	for _, lead := range leads {
		scoreSum += lead.Score
		if lead.Score >= hotThreshold {
			summary.LeadsHot++
		}
		if lead.BusinessEmail {
			businessCount++
		}

		summary.IntentDistribution[lead.Intent]++
		summary.PersonaDistribution[lead.Persona]++
		summary.SeniorityDistribution[lead.Seniority]++
		if lead.WorkflowSuggested != "" {
			summary.WorkflowsDistribution[lead.WorkflowSuggested]++
		}
		if lead.Country != nil && *lead.Country != "" {
			summary.CountryDistribution[*lead.Country]++
		}
	}

	if total > 0 {
		summary.ResponseRate = s.metrics.ResponseRate()
		summary.AvgScore = round1(float64(scoreSum) / float64(total))
		summary.BusinessEmailRatio = round1(100 * float64(businessCount) / float64(total))
	}

	summary.WorkflowStatus = workflowStatus(total, summary.LeadsHot)
	summary.Insights = insights(summary)

	return summary
}

// Latest returns the stored summary, or the empty-state payload when no
// import has happened yet.
func (s *Service) Latest(ctx context.Context) (transport.Summary, error) {
	summary, found, err := s.store.Latest(ctx)
	if err != nil {
		return transport.Summary{}, err
	}
	if !found {
		return transport.Default(), nil
	}
	return summary, nil
}

// RegisterHandlers subscribes the service to import events so every new
// batch refreshes the stored summary.
func (s *Service) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadsImported{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		imported, ok := event.(events.LeadsImported)
		if !ok {
			return fmt.Errorf("unexpected event type %T", event)
		}
		if err := s.store.Save(ctx, imported.Summary); err != nil {
			return fmt.Errorf("store summary: %w", err)
		}
		if s.log != nil {
			s.log.Info("dashboard summary refreshed",
				"total", imported.Total,
				"hot", imported.Hot,
				"avg_score", imported.AvgScore,
			)
		}
		return nil
	}))
}

// workflowStatus derives the activity rows from the batch size and the hot
// lead count.
func workflowStatus(total, hot int) []transport.WorkflowStatusEntry {
	return []transport.WorkflowStatusEntry{
		{Action: transport.StatusSMSSent, Count: min(hot, max(5, hot/2))},
		{Action: transport.StatusAIEmailSent, Count: max(3, total/4)},
		{Action: transport.StatusRepliesIn, Count: max(1, total/20)},
	}
}

// insights turns the aggregates into the dashboard callouts. Order is
// stable; when nothing stands out a neutral message is returned.
func insights(summary transport.Summary) []string {
	var out []string

	if summary.AvgScore >= 65 {
		out = append(out, "Qualité moyenne élevée des leads (score moyen ≥ 65).")
	}
	if summary.IntentDistribution["demo"] > summary.IntentDistribution["resource"] {
		out = append(out, "Plus de demandes démo que de téléchargements de ressources.")
	}
	if summary.BusinessEmailRatio >= 70 {
		out = append(out, "Majorité d’emails professionnels (≥ 70%).")
	}
	if persona, ok := topEntry(summary.PersonaDistribution); ok {
		out = append(out, fmt.Sprintf("Persona dominant détecté : %s.", persona))
	}
	if country, ok := topEntry(summary.CountryDistribution); ok {
		out = append(out, fmt.Sprintf("Flux principal en %s.", country))
	}

	if len(out) == 0 {
		out = []string{"Analyse initiale effectuée."}
	}
	return out
}

// topEntry picks the label with the highest count. Ties break on the
// lexicographically smallest label so the output stays deterministic.
func topEntry(dist map[string]int) (string, bool) {
	if len(dist) == 0 {
		return "", false
	}

	labels := make([]string, 0, len(dist))
	for label := range dist {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if dist[label] > dist[best] {
			best = label
		}
	}
	return best, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
