// Package service orchestrates the lead import pipeline: fetch the sheet,
// classify every row, aggregate the batch and publish the result.
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	dashtransport "smartcaller_backend/internal/dashboard/transport"
	"smartcaller_backend/internal/events"
	"smartcaller_backend/internal/leads/classify"
	"smartcaller_backend/internal/leads/scoring"
	"smartcaller_backend/internal/leads/transport"
	"smartcaller_backend/platform/logger"
	"smartcaller_backend/platform/phone"
)

// classifyConcurrency bounds the number of rows classified in parallel.
const classifyConcurrency = 8

// SheetFetcher downloads a spreadsheet and returns header-keyed rows.
type SheetFetcher interface {
	Fetch(ctx context.Context, url string) ([]map[string]string, error)
}

// Summarizer aggregates a classified batch into the dashboard summary.
type Summarizer interface {
	Summarize(leads []transport.ClassifiedLead) dashtransport.Summary
}

// Service runs lead imports.
type Service struct {
	fetcher    SheetFetcher
	summarizer Summarizer
	engine     *scoring.Engine
	bus        events.Bus
	log        *logger.Logger
}

// NewService creates the leads service.
func NewService(fetcher SheetFetcher, summarizer Summarizer, engine *scoring.Engine, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		summarizer: summarizer,
		engine:     engine,
		bus:        bus,
		log:        log,
	}
}

// Import downloads the sheet at the given URL, classifies every row and
// returns the batch with its summary. The summary is also published on the
// event bus so the dashboard cache refreshes.
func (s *Service) Import(ctx context.Context, url string) (transport.ImportResponse, error) {
	rows, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return transport.ImportResponse{}, err
	}

	leads, err := s.ClassifyBatch(ctx, transport.LeadRecordsFromRows(rows))
	if err != nil {
		return transport.ImportResponse{}, err
	}

	summary := s.summarizer.Summarize(leads)

	event := events.LeadsImported{
		BaseEvent: events.NewBaseEvent(),
		SourceURL: url,
		Total:     summary.LeadsTotal,
		Hot:       summary.LeadsHot,
		AvgScore:  summary.AvgScore,
		Summary:   summary,
	}
	if err := s.bus.PublishSync(ctx, event); err != nil && s.log != nil {
		// A stale dashboard cache is not worth failing the import over.
		s.log.Error("publish import event failed", "error", err)
	}

	if s.log != nil {
		s.log.WithContext(ctx).ImportEvent(url, summary.LeadsTotal, summary.LeadsHot, summary.AvgScore)
	}

	return transport.ImportResponse{Leads: leads, Summary: summary}, nil
}

// ClassifyBatch classifies all records concurrently, preserving input order.
func (s *Service) ClassifyBatch(ctx context.Context, records []transport.LeadRecord) ([]transport.ClassifiedLead, error) {
	results := make([]transport.ClassifiedLead, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(classifyConcurrency)

	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.classifyRecord(record)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) classifyRecord(record transport.LeadRecord) transport.ClassifiedLead {
	seniority, weight, persona := classify.ParseTitle(record.JobTitle)
	intent := classify.DetectIntent(record.Source, record.FormName, record.Message)

	score := s.engine.Score(scoring.Input{
		Intent:          intent,
		SeniorityWeight: weight,
		Persona:         persona,
		Email:           record.Email,
		Phone:           record.Phone,
		CompanyName:     record.CompanyName,
		Message:         record.Message,
		Source:          record.Source,
		UTMSource:       record.UTMSource,
		CreatedAt:       record.CreatedAt,
	})

	var country *string
	if c := phone.CountryFromPhone(record.Phone); c != "" {
		country = &c
	}

	return transport.ClassifiedLead{
		Name:              strings.TrimSpace(record.FirstName + " " + record.LastName),
		Email:             record.Email,
		Company:           classify.DomainToCompany(record.Email, record.CompanyName),
		JobTitle:          record.JobTitle,
		Persona:           persona,
		Seniority:         seniority,
		Intent:            intent,
		Score:             score,
		WorkflowSuggested: s.engine.SuggestWorkflow(intent, score),
		Country:           country,
		BusinessEmail:     classify.IsBusinessEmail(record.Email),
	}
}
