package services

import (
	"wealthdesk/internal/analytics"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/report"
)

// Actor is the signed-in staff member a call is made on behalf of.
type Actor struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// IsAdmin reports whether the actor carries the admin role label.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// AuthServicer defines the contract for the mock login.
type AuthServicer interface {
	Login(email, password string, role models.Role) (*Actor, error)
}

// ClientFilter holds optional filter parameters for listing clients.
type ClientFilter struct {
	// Search matches name, company or email, case-insensitively.
	Search string
	Status *models.ClientStatus
}

// ImportResult counts the outcome of a CSV import.
type ImportResult struct {
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Clients  []models.Client `json:"clients"`
}

// ClientServicer defines the contract for client-related business logic.
type ClientServicer interface {
	ListClients(filter ClientFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	SearchClients(filter ClientFilter) ([]models.Client, error)
	GetClient(id string) (*models.Client, error)
	CreateClient(actor Actor, c models.Client) (*models.Client, error)
	UpdateClient(id string, patch models.ClientPatch) (*models.Client, error)
	ArchiveClient(id string) (*models.Client, error)
	DeleteClient(actor Actor, id string) error
	ExportClients(filter ClientFilter) (string, error)
	ImportClients(actor Actor, csvText string) (*ImportResult, error)
}

// NoteServicer defines the contract for client interaction notes.
type NoteServicer interface {
	GetClientNotes(clientID string) ([]models.Note, error)
	AddNote(actor Actor, clientID, content string) (*models.Note, error)
	UpdateNote(id, content string) (*models.Note, error)
	DeleteNote(id string) error
}

// TaskFilter holds optional filter parameters for listing tasks.
type TaskFilter struct {
	ClientID string
	Status   *models.TaskStatus
}

// TaskColumn is one status lane of the task board.
type TaskColumn struct {
	Status models.TaskStatus `json:"status"`
	Tasks  []models.Task     `json:"tasks"`
}

// TaskServicer defines the contract for task-related business logic.
type TaskServicer interface {
	ListTasks(filter TaskFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Task], error)
	TaskBoard() ([]TaskColumn, error)
	GetTask(id string) (*models.Task, error)
	CreateTask(actor Actor, t models.Task) (*models.Task, error)
	UpdateTask(id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(id string) error
}

// FolioServicer defines the contract for client folios.
type FolioServicer interface {
	GetClientFolios(clientID string) ([]models.Folio, error)
	AddFolio(clientID string, f models.Folio) (*models.Folio, error)
	UpdateFolio(id string, patch models.FolioPatch) (*models.Folio, error)
	DeleteFolio(id string) error
}

// HoldingServicer defines the contract for holdings and portfolio analytics.
type HoldingServicer interface {
	GetClientHoldings(clientID string) ([]models.Holding, error)
	GetHolding(id string) (*models.Holding, error)
	AddHolding(clientID string, h models.Holding) (*models.Holding, error)
	UpdateHolding(id string, patch models.HoldingPatch) (*models.Holding, error)
	UpdateHoldingPrice(id string, price float64) (*models.Holding, error)
	DeleteHolding(id string) error
	GetPortfolio(clientID string) (*analytics.PortfolioPerformance, error)
	GetFirmSummary() (*analytics.Summary, error)
}

// StatusCount is one slice of the client status distribution.
type StatusCount struct {
	Status models.ClientStatus `json:"status"`
	Count  int                 `json:"count"`
}

// Dashboard is the landing page overview.
type Dashboard struct {
	TotalClients       int             `json:"total_clients"`
	ActiveClients      int             `json:"active_clients"`
	NewLeads           int             `json:"new_leads"`
	PendingTasks       int             `json:"pending_tasks"`
	StatusDistribution []StatusCount   `json:"status_distribution"`
	RecentClients      []models.Client `json:"recent_clients"`
	UpcomingTasks      []models.Task   `json:"upcoming_tasks"`
}

// DashboardServicer defines the contract for the dashboard overview.
type DashboardServicer interface {
	GetDashboard() (*Dashboard, error)
}

// ReportServicer defines the contract for client portfolio reports.
type ReportServicer interface {
	BuildReport(clientID, currency string) (*report.Report, error)
	FileName(r *report.Report, f report.Format) string
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actor Actor, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
