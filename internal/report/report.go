// Package report assembles a client's portfolio report and renders it as
// JSON, Markdown, printable HTML, PDF or an XLSX workbook.
package report

import (
	"sort"
	"time"

	"wealthdesk/internal/analytics"
	"wealthdesk/internal/models"
)

// Input is everything a report is built from.
type Input struct {
	Firm        string
	Currency    string
	Client      models.Client
	Holdings    []models.Holding
	Folios      []models.Folio
	Tasks       []models.Task
	GeneratedAt time.Time
}

// Report is the document model shared by every renderer.
type Report struct {
	Firm         string                         `json:"firm"`
	Currency     string                         `json:"currency"`
	GeneratedAt  time.Time                      `json:"generated_at"`
	AsOf         models.Date                    `json:"as_of"`
	Client       models.Client                  `json:"client"`
	Portfolio    analytics.PortfolioPerformance `json:"portfolio"`
	Folios       []models.Folio                 `json:"folios"`
	PendingTasks []models.Task                  `json:"pending_tasks"`
}

// Build values the client's holdings as of the generation day and keeps the
// client's folios and the tasks that are not completed, soonest due first.
func Build(in Input) *Report {
	asOf := models.DateOf(in.GeneratedAt.UTC())

	var holdings []models.Holding
	for _, h := range in.Holdings {
		if h.ClientID == in.Client.ID {
			holdings = append(holdings, h)
		}
	}
	folios := []models.Folio{}
	for _, f := range in.Folios {
		if f.ClientID == in.Client.ID {
			folios = append(folios, f)
		}
	}
	pending := []models.Task{}
	for _, t := range in.Tasks {
		if t.ClientID == in.Client.ID && t.IsOpen() {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})

	return &Report{
		Firm:         in.Firm,
		Currency:     in.Currency,
		GeneratedAt:  in.GeneratedAt,
		AsOf:         asOf,
		Client:       in.Client,
		Portfolio:    analytics.EvaluatePortfolio(holdings, asOf),
		Folios:       folios,
		PendingTasks: pending,
	}
}
