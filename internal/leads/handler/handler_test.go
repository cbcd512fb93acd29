package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	dashservice "smartcaller_backend/internal/dashboard/service"
	"smartcaller_backend/internal/dashboard/store"
	"smartcaller_backend/internal/events"
	"smartcaller_backend/internal/leads/scoring"
	"smartcaller_backend/internal/leads/service"
	"smartcaller_backend/platform/apperr"
	"smartcaller_backend/platform/validator"
)

type fakeRules struct{}

func (fakeRules) GetTargetPersonas() []string    { return []string{"CEO", "Sales"} }
func (fakeRules) GetPriorityCountries() []string { return []string{"FR"} }

type fakeFetcher struct {
	rows []map[string]string
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]map[string]string, error) {
	return f.rows, f.err
}

type fixedMetrics struct{}

func (fixedMetrics) ResponseRate() float64 { return 0.3 }

func newTestRouter(fetcher *fakeFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dashSvc := dashservice.NewService(store.NewMemoryStore(), fixedMetrics{}, nil)
	svc := service.NewService(fetcher, dashSvc, scoring.NewEngine(fakeRules{}), events.NewInMemoryBus(nil), nil)
	h := New(svc, validator.New())

	router := gin.New()
	router.POST("/api/leads/import", h.Import)
	return router
}

func doImport(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestImportSuccess(t *testing.T) {
	router := newTestRouter(&fakeFetcher{rows: []map[string]string{
		{"first_name": "Jane", "email": "jane@acme.io", "job_title": "CEO", "message": "demo svp"},
	}})

	rec := doImport(t, router, `{"url":"https://docs.google.com/spreadsheets/d/x/export?format=csv"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Leads []struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"leads"`
		Summary struct {
			LeadsTotal int `json:"leads_total"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Leads) != 1 || resp.Leads[0].Name != "Jane" {
		t.Fatalf("leads = %+v", resp.Leads)
	}
	if resp.Summary.LeadsTotal != 1 {
		t.Fatalf("summary = %+v", resp.Summary)
	}
}

func TestImportMissingURL(t *testing.T) {
	router := newTestRouter(&fakeFetcher{})

	rec := doImport(t, router, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Champ 'url' requis.") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestImportMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeFetcher{})

	rec := doImport(t, router, `{"url":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid request") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestImportInvalidSheetURL(t *testing.T) {
	router := newTestRouter(&fakeFetcher{err: apperr.Validation("URL Google Sheet invalide (attendu: export CSV).")})

	rec := doImport(t, router, `{"url":"https://example.com/leads.xlsx"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "URL Google Sheet invalide") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestImportUpstreamFailure(t *testing.T) {
	router := newTestRouter(&fakeFetcher{err: apperr.Upstream("échec du téléchargement de la feuille (HTTP 403)")})

	rec := doImport(t, router, `{"url":"https://docs.google.com/spreadsheets/d/x/export?format=csv"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}
