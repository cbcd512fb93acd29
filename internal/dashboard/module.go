// Package dashboard is the summary aggregation module.
package dashboard

import (
	"smartcaller_backend/internal/dashboard/handler"
	"smartcaller_backend/internal/dashboard/service"
	"smartcaller_backend/internal/events"
	apphttp "smartcaller_backend/internal/http"
)

// Module mounts the dashboard routes and subscribes to import events.
type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

// NewModule creates the dashboard module.
func NewModule(svc *service.Service) *Module {
	return &Module{svc: svc, handler: handler.New(svc)}
}

func (m *Module) Name() string { return "dashboard" }

// RegisterRoutes mounts the summary endpoint.
func (m *Module) RegisterRoutes(ctx apphttp.RouterContext) {
	group := ctx.API.Group("/dashboard")
	group.GET("/summary", m.handler.Summary)
}

// RegisterEventHandlers subscribes the summary refresh to import events.
func (m *Module) RegisterEventHandlers(bus events.Bus) {
	m.svc.RegisterHandlers(bus)
}
