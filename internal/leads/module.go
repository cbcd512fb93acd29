// Package leads is the lead import and classification module.
package leads

import (
	apphttp "smartcaller_backend/internal/http"
	"smartcaller_backend/internal/leads/handler"
)

// Module mounts the leads routes.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the leads module.
func NewModule(h *handler.Handler) *Module {
	return &Module{handler: h}
}

func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts the import endpoint behind the import rate limiter.
func (m *Module) RegisterRoutes(ctx apphttp.RouterContext) {
	group := ctx.API.Group("/leads")
	group.POST("/import", ctx.ImportRateLimit, m.handler.Import)
}
