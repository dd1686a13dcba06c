package services

import (
	"strings"

	"wealthdesk/internal/config"
	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/report"
	"wealthdesk/internal/repository"
)

// reportService assembles client portfolio reports.
type reportService struct {
	repos *repository.Repositories
	now   repository.Clock
	cfg   *config.Config
}

// NewReportService creates a new ReportServicer. Firm name and default
// currency come from cfg.
func NewReportService(repos *repository.Repositories, now repository.Clock, cfg *config.Config) ReportServicer {
	return &reportService{repos: repos, now: now, cfg: cfg}
}

// BuildReport gathers the client's holdings, folios and open tasks. An empty
// currency uses the configured report currency.
func (s *reportService) BuildReport(clientID, currency string) (*report.Report, error) {
	client, err := requireClient(s.repos, clientID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.repos.Holdings.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	folios, err := s.repos.Folios.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tasks, err := s.repos.Tasks.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if currency = strings.ToUpper(strings.TrimSpace(currency)); currency == "" {
		currency = s.cfg.ReportCurrency
	}
	return report.Build(report.Input{
		Firm:        s.cfg.FirmName,
		Currency:    currency,
		Client:      *client,
		Holdings:    holdings,
		Folios:      folios,
		Tasks:       tasks,
		GeneratedAt: s.now(),
	}), nil
}

func (s *reportService) FileName(r *report.Report, f report.Format) string {
	return report.FileName(r.Firm, r.Client.Name, f)
}
