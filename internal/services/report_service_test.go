package services

import (
	"testing"

	"wealthdesk/internal/config"
	"wealthdesk/internal/models"
	"wealthdesk/internal/report"
	"wealthdesk/internal/testutil"
)

func TestBuildReport(t *testing.T) {
	repos := testutil.NewMemoryRepos(t)
	cfg := &config.Config{FirmName: "DS Partners", ReportCurrency: "INR"}
	svc := NewReportService(repos, testutil.Clock(testutil.FixedNow), cfg)

	client := testutil.CreateTestClientWith(t, repos, models.Client{
		Name: "Rahul Mehta", Company: "Mehta Industries", Email: "rahul@mehta.com", Status: models.ClientStatusActive,
	})
	testutil.CreateTestHolding(t, repos, client.ID, models.AssetClassStocks, models.MustParseDate("2023-06-10"), 10, 100, 120)
	testutil.CreateTestFolio(t, repos, client.ID)
	open := testutil.CreateTestTask(t, repos, client.ID, models.MustParseDate("2024-06-20"))
	closed := testutil.CreateTestTask(t, repos, client.ID, models.MustParseDate("2024-06-01"))
	done := models.TaskStatusCompleted
	_, err := repos.Tasks.Update(closed.ID, models.TaskPatch{Status: &done})
	testutil.AssertNoError(t, err)

	r, err := svc.BuildReport(client.ID, "")
	testutil.AssertNoError(t, err)

	if r.Firm != "DS Partners" || r.Currency != "INR" {
		t.Errorf("expected configured firm and currency, got %q %q", r.Firm, r.Currency)
	}
	if r.AsOf != models.DateOf(testutil.FixedNow) {
		t.Errorf("expected as-of today, got %s", r.AsOf)
	}
	testutil.AssertFloat(t, "current", r.Portfolio.TotalCurrent, 1200)
	if len(r.Folios) != 1 {
		t.Errorf("expected 1 folio, got %d", len(r.Folios))
	}
	if len(r.PendingTasks) != 1 || r.PendingTasks[0].ID != open.ID {
		t.Errorf("expected only the open task, got %+v", r.PendingTasks)
	}

	if got := svc.FileName(r, report.FormatPDF); got != "DS_Partners_Report_Rahul_Mehta.pdf" {
		t.Errorf("unexpected file name %q", got)
	}

	usd, err := svc.BuildReport(client.ID, " usd ")
	testutil.AssertNoError(t, err)
	if usd.Currency != "USD" {
		t.Errorf("expected USD, got %q", usd.Currency)
	}

	_, err = svc.BuildReport("missing", "")
	testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
}
