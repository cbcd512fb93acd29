// Package handler exposes the lead import endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcaller_backend/internal/leads/service"
	"smartcaller_backend/internal/leads/transport"
	"smartcaller_backend/platform/httpkit"
	"smartcaller_backend/platform/validator"
)

// Handler handles lead HTTP requests.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
}

// New creates a leads handler.
func New(svc *service.Service, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Import handles POST /api/leads/import. The body carries the Google Sheet
// URL; the response is the classified batch plus its summary.
func (h *Handler) Import(c *gin.Context) {
	var req transport.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Champ 'url' requis.", nil)
		return
	}

	resp, err := h.svc.Import(c.Request.Context(), req.URL)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
