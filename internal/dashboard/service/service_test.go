package service

import (
	"context"
	"testing"

	"smartcaller_backend/internal/dashboard/store"
	"smartcaller_backend/internal/dashboard/transport"
	"smartcaller_backend/internal/events"
	leadtransport "smartcaller_backend/internal/leads/transport"
)

type fixedMetrics struct{ rate float64 }

func (f fixedMetrics) ResponseRate() float64 { return f.rate }

func strptr(s string) *string { return &s }

func newTestService() *Service {
	return NewService(store.NewMemoryStore(), fixedMetrics{rate: 0.28}, nil)
}

func TestSummarizeAggregates(t *testing.T) {
	s := newTestService()

	leads := []leadtransport.ClassifiedLead{
		{Persona: "CEO", Seniority: "exec", Intent: "demo", Score: 90, WorkflowSuggested: "Réponse rapide", Country: strptr("FR"), BusinessEmail: true},
		{Persona: "CEO", Seniority: "exec", Intent: "demo", Score: 72, WorkflowSuggested: "Réponse rapide", Country: strptr("FR"), BusinessEmail: true},
		{Persona: "Tech", Seniority: "manager", Intent: "resource", Score: 60, WorkflowSuggested: "Nurturing doux", Country: strptr("BE"), BusinessEmail: true},
		{Persona: "Other", Seniority: "other", Intent: "other", Score: 40, WorkflowSuggested: "Safe hours", BusinessEmail: false},
	}

	got := s.Summarize(leads)

	if got.LeadsTotal != 4 {
		t.Fatalf("leads_total = %d, want 4", got.LeadsTotal)
	}
	if got.LeadsHot != 2 {
		t.Fatalf("leads_hot = %d, want 2", got.LeadsHot)
	}
	if got.AvgScore != 65.5 {
		t.Fatalf("avg_score = %v, want 65.5", got.AvgScore)
	}
	if got.BusinessEmailRatio != 75.0 {
		t.Fatalf("business_email_ratio = %v, want 75.0", got.BusinessEmailRatio)
	}
	if got.ResponseRate != 0.28 {
		t.Fatalf("response_rate = %v, want 0.28", got.ResponseRate)
	}
	if got.IntentDistribution["demo"] != 2 || got.IntentDistribution["resource"] != 1 || got.IntentDistribution["other"] != 1 {
		t.Fatalf("intent_distribution = %v", got.IntentDistribution)
	}
	if got.CountryDistribution["FR"] != 2 || got.CountryDistribution["BE"] != 1 {
		t.Fatalf("country_distribution = %v", got.CountryDistribution)
	}
	if len(got.CountryDistribution) != 2 {
		t.Fatalf("leads without a country must not be counted: %v", got.CountryDistribution)
	}
	if got.WorkflowsDistribution["Réponse rapide"] != 2 {
		t.Fatalf("workflows_distribution = %v", got.WorkflowsDistribution)
	}
}

func TestSummarizeWorkflowStatus(t *testing.T) {
	got := workflowStatus(40, 12)

	want := []transport.WorkflowStatusEntry{
		{Action: "SMS envoyé", Count: 6},
		{Action: "Email IA envoyé", Count: 10},
		{Action: "Réponses reçues", Count: 2},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Few hot leads: the SMS row is capped by the hot count itself.
	if rows := workflowStatus(8, 2); rows[0].Count != 2 {
		t.Fatalf("sms count = %d, want 2", rows[0].Count)
	}
}

func TestSummarizeSkipsEmptyWorkflowLabels(t *testing.T) {
	s := newTestService()

	got := s.Summarize([]leadtransport.ClassifiedLead{
		{Intent: "other", Score: 40, WorkflowSuggested: ""},
		{Intent: "demo", Score: 80, WorkflowSuggested: "Réponse rapide"},
	})

	if _, ok := got.WorkflowsDistribution[""]; ok {
		t.Fatalf("empty workflow label counted: %v", got.WorkflowsDistribution)
	}
	if got.WorkflowsDistribution["Réponse rapide"] != 1 {
		t.Fatalf("workflows_distribution = %v", got.WorkflowsDistribution)
	}
}

func TestSummarizeEmptyBatch(t *testing.T) {
	s := newTestService()
	got := s.Summarize(nil)

	if got.LeadsTotal != 0 || got.LeadsHot != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", got.LeadsTotal, got.LeadsHot)
	}
	if got.ResponseRate != 0 || got.AvgScore != 0 || got.BusinessEmailRatio != 0 {
		t.Fatalf("rates must be zero on an empty batch: %+v", got)
	}
	if len(got.Insights) != 1 || got.Insights[0] != "Analyse initiale effectuée." {
		t.Fatalf("insights = %v", got.Insights)
	}
}

func TestSummarizeInsights(t *testing.T) {
	s := newTestService()

	leads := []leadtransport.ClassifiedLead{
		{Persona: "CEO", Seniority: "exec", Intent: "demo", Score: 80, Country: strptr("FR"), BusinessEmail: true},
		{Persona: "CEO", Seniority: "exec", Intent: "demo", Score: 70, Country: strptr("FR"), BusinessEmail: true},
	}

	got := s.Summarize(leads)

	want := []string{
		"Qualité moyenne élevée des leads (score moyen ≥ 65).",
		"Plus de demandes démo que de téléchargements de ressources.",
		"Majorité d’emails professionnels (≥ 70%).",
		"Persona dominant détecté : CEO.",
		"Flux principal en FR.",
	}
	if len(got.Insights) != len(want) {
		t.Fatalf("insights = %v, want %v", got.Insights, want)
	}
	for i := range want {
		if got.Insights[i] != want[i] {
			t.Fatalf("insight %d = %q, want %q", i, got.Insights[i], want[i])
		}
	}
}

func TestTopEntryTieBreak(t *testing.T) {
	label, ok := topEntry(map[string]int{"Sales": 3, "CEO": 3, "Tech": 1})
	if !ok || label != "CEO" {
		t.Fatalf("topEntry = %q (%v), want CEO", label, ok)
	}

	if _, ok := topEntry(nil); ok {
		t.Fatal("topEntry(nil) must report not found")
	}
}

func TestLatestFallsBackToDefault(t *testing.T) {
	s := newTestService()

	got, err := s.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.LeadsTotal != 0 || len(got.Insights) != 1 {
		t.Fatalf("default payload = %+v", got)
	}
	if got.Insights[0] != "Aucune analyse disponible. Importez d’abord des leads." {
		t.Fatalf("insights = %v", got.Insights)
	}
	if len(got.WorkflowStatus) != 2 {
		t.Fatalf("workflow_status = %v", got.WorkflowStatus)
	}
}

func TestRegisterHandlersStoresSummary(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewService(st, fixedMetrics{rate: 0.3}, nil)
	bus := events.NewInMemoryBus(nil)
	s.RegisterHandlers(bus)

	summary := transport.Default()
	summary.LeadsTotal = 7

	err := bus.PublishSync(context.Background(), events.LeadsImported{
		BaseEvent: events.NewBaseEvent(),
		Total:     7,
		Summary:   summary,
	})
	if err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	stored, found, err := st.Latest(context.Background())
	if err != nil || !found {
		t.Fatalf("Latest: found=%v err=%v", found, err)
	}
	if stored.LeadsTotal != 7 {
		t.Fatalf("stored total = %d, want 7", stored.LeadsTotal)
	}
}
