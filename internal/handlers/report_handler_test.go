package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/report"
)

func setupReportRouter() *gin.Engine {
	svc := &mockReportService{
		buildReport: func(clientID, currency string) (*report.Report, error) {
			if clientID != "c1" {
				return nil, apperrors.ErrClientNotFound
			}
			if currency == "" {
				currency = "INR"
			}
			return report.Build(report.Input{
				Firm:     "DS Partners",
				Currency: currency,
				Client:   models.Client{ID: "c1", Name: "Rahul Mehta", Company: "Mehta Exports"},
				Holdings: []models.Holding{{
					ID: "h1", ClientID: "c1", AssetClass: models.AssetClassStocks, Name: "Infosys",
					PurchaseDate: models.NewDate(2023, 6, 10), Units: 10, AverageCost: 1400, CurrentPrice: 1500,
				}},
				GeneratedAt: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
			}), nil
		},
	}
	r := gin.New()
	r.GET("/clients/:id/report/:format", injectActor(models.RoleStaff), NewReportHandler(svc).GetReport)
	return r
}

func TestReportHandler_GetReport(t *testing.T) {
	r := setupReportRouter()

	t.Run("json is inline", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/clients/c1/report/json?currency=USD", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="DS_Partners_Report_Rahul_Mehta.json"` {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
		rep := parseJSON(t, w)
		client, _ := rep["client"].(map[string]any)
		if rep["currency"] != "USD" || client["name"] != "Rahul Mehta" {
			t.Errorf("unexpected report %v", rep)
		}
	})

	t.Run("markdown is an attachment", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/clients/c1/report/markdown", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") || !strings.HasSuffix(cd, `.md"`) {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
		if !strings.Contains(w.Body.String(), "Rahul Mehta") {
			t.Error("expected client name in markdown")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/clients/c1/report/docx", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "UNSUPPORTED_FORMAT")
	})

	t.Run("invalid currency", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/clients/c1/report/json?currency=ABC", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("unknown client", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/clients/c9/report/pdf", nil)
		assertErrorCode(t, w, http.StatusNotFound, "CLIENT_NOT_FOUND")
	})
}
