// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	dashtransport "smartcaller_backend/internal/dashboard/transport"
	"smartcaller_backend/platform/events"
	"smartcaller_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *events.InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadsImported is published after a spreadsheet batch has been classified
// and summarized. The dashboard module subscribes to it to refresh the
// last-summary cache.
type LeadsImported struct {
	BaseEvent
	SourceURL string                `json:"sourceUrl"`
	Total     int                   `json:"total"`
	Hot       int                   `json:"hot"`
	AvgScore  float64               `json:"avgScore"`
	Summary   dashtransport.Summary `json:"summary"`
}

func (e LeadsImported) EventName() string { return "leads.imported" }
