// Package handler exposes the dashboard summary endpoint.
package handler

import (
	"github.com/gin-gonic/gin"

	"smartcaller_backend/internal/dashboard/service"
	"smartcaller_backend/platform/apperr"
	"smartcaller_backend/platform/httpkit"
)

// Handler handles dashboard HTTP requests.
type Handler struct {
	svc *service.Service
}

// New creates a dashboard handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Summary handles GET /api/dashboard/summary. Before any import it serves
// the empty-state payload.
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "résumé indisponible", err))
		return
	}
	httpkit.OK(c, summary)
}
