package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wealthdesk/internal/analytics"
	"wealthdesk/internal/config"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/report"
	"wealthdesk/internal/services"
	"wealthdesk/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: time.Hour})
}

// injectActor stands in for AuthMiddleware.
func injectActor(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmail, "asha.rao@dsp.in")
		c.Set(middleware.ContextName, "Asha Rao")
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response JSON: %v\nbody: %s", err, w.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Errorf("expected status %d, got %d (body: %s)", wantStatus, w.Code, w.Body.String())
	}
	resp := parseJSON(t, w)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response, got %v", resp)
	}
	if errObj["code"] != wantCode {
		t.Errorf("expected error code %q, got %q", wantCode, errObj["code"])
	}
}

// --- mocks ---

type mockAuthService struct {
	login func(email, password string, role models.Role) (*services.Actor, error)
}

var _ services.AuthServicer = (*mockAuthService)(nil)

func (m *mockAuthService) Login(email, password string, role models.Role) (*services.Actor, error) {
	return m.login(email, password, role)
}

type auditEntry struct {
	Action     string
	ResourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(_ services.Actor, action, _, resourceID, _ string, _ map[string]any) {
	m.entries = append(m.entries, auditEntry{Action: action, ResourceID: resourceID})
}

type mockClientService struct {
	listClients   func(filter services.ClientFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	getClient     func(id string) (*models.Client, error)
	createClient  func(actor services.Actor, c models.Client) (*models.Client, error)
	updateClient  func(id string, patch models.ClientPatch) (*models.Client, error)
	archiveClient func(id string) (*models.Client, error)
	deleteClient  func(actor services.Actor, id string) error
	exportClients func(filter services.ClientFilter) (string, error)
	importClients func(actor services.Actor, csvText string) (*services.ImportResult, error)
}

var _ services.ClientServicer = (*mockClientService)(nil)

func (m *mockClientService) ListClients(filter services.ClientFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	return m.listClients(filter, page)
}
func (m *mockClientService) SearchClients(services.ClientFilter) ([]models.Client, error) {
	return nil, nil
}
func (m *mockClientService) GetClient(id string) (*models.Client, error) { return m.getClient(id) }
func (m *mockClientService) CreateClient(actor services.Actor, c models.Client) (*models.Client, error) {
	return m.createClient(actor, c)
}
func (m *mockClientService) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	return m.updateClient(id, patch)
}
func (m *mockClientService) ArchiveClient(id string) (*models.Client, error) {
	return m.archiveClient(id)
}
func (m *mockClientService) DeleteClient(actor services.Actor, id string) error {
	return m.deleteClient(actor, id)
}
func (m *mockClientService) ExportClients(filter services.ClientFilter) (string, error) {
	return m.exportClients(filter)
}
func (m *mockClientService) ImportClients(actor services.Actor, csvText string) (*services.ImportResult, error) {
	return m.importClients(actor, csvText)
}

type mockNoteService struct {
	getClientNotes func(clientID string) ([]models.Note, error)
	addNote        func(actor services.Actor, clientID, content string) (*models.Note, error)
	updateNote     func(id, content string) (*models.Note, error)
	deleteNote     func(id string) error
}

var _ services.NoteServicer = (*mockNoteService)(nil)

func (m *mockNoteService) GetClientNotes(clientID string) ([]models.Note, error) {
	return m.getClientNotes(clientID)
}
func (m *mockNoteService) AddNote(actor services.Actor, clientID, content string) (*models.Note, error) {
	return m.addNote(actor, clientID, content)
}
func (m *mockNoteService) UpdateNote(id, content string) (*models.Note, error) {
	return m.updateNote(id, content)
}
func (m *mockNoteService) DeleteNote(id string) error { return m.deleteNote(id) }

type mockTaskService struct {
	listTasks  func(filter services.TaskFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Task], error)
	taskBoard  func() ([]services.TaskColumn, error)
	getTask    func(id string) (*models.Task, error)
	createTask func(actor services.Actor, t models.Task) (*models.Task, error)
	updateTask func(id string, patch models.TaskPatch) (*models.Task, error)
	deleteTask func(id string) error
}

var _ services.TaskServicer = (*mockTaskService)(nil)

func (m *mockTaskService) ListTasks(filter services.TaskFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Task], error) {
	return m.listTasks(filter, page)
}
func (m *mockTaskService) TaskBoard() ([]services.TaskColumn, error) { return m.taskBoard() }
func (m *mockTaskService) GetTask(id string) (*models.Task, error) { return m.getTask(id) }
func (m *mockTaskService) CreateTask(actor services.Actor, t models.Task) (*models.Task, error) {
	return m.createTask(actor, t)
}
func (m *mockTaskService) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	return m.updateTask(id, patch)
}
func (m *mockTaskService) DeleteTask(id string) error { return m.deleteTask(id) }

type mockFolioService struct {
	getClientFolios func(clientID string) ([]models.Folio, error)
	addFolio        func(clientID string, f models.Folio) (*models.Folio, error)
	updateFolio     func(id string, patch models.FolioPatch) (*models.Folio, error)
	deleteFolio     func(id string) error
}

var _ services.FolioServicer = (*mockFolioService)(nil)

func (m *mockFolioService) GetClientFolios(clientID string) ([]models.Folio, error) {
	return m.getClientFolios(clientID)
}
func (m *mockFolioService) AddFolio(clientID string, f models.Folio) (*models.Folio, error) {
	return m.addFolio(clientID, f)
}
func (m *mockFolioService) UpdateFolio(id string, patch models.FolioPatch) (*models.Folio, error) {
	return m.updateFolio(id, patch)
}
func (m *mockFolioService) DeleteFolio(id string) error { return m.deleteFolio(id) }

type mockHoldingService struct {
	getClientHoldings  func(clientID string) ([]models.Holding, error)
	getHolding         func(id string) (*models.Holding, error)
	addHolding         func(clientID string, h models.Holding) (*models.Holding, error)
	updateHolding      func(id string, patch models.HoldingPatch) (*models.Holding, error)
	updateHoldingPrice func(id string, price float64) (*models.Holding, error)
	deleteHolding      func(id string) error
	getPortfolio       func(clientID string) (*analytics.PortfolioPerformance, error)
	getFirmSummary     func() (*analytics.Summary, error)
}

var _ services.HoldingServicer = (*mockHoldingService)(nil)

func (m *mockHoldingService) GetClientHoldings(clientID string) ([]models.Holding, error) {
	return m.getClientHoldings(clientID)
}
func (m *mockHoldingService) GetHolding(id string) (*models.Holding, error) {
	return m.getHolding(id)
}
func (m *mockHoldingService) AddHolding(clientID string, h models.Holding) (*models.Holding, error) {
	return m.addHolding(clientID, h)
}
func (m *mockHoldingService) UpdateHolding(id string, patch models.HoldingPatch) (*models.Holding, error) {
	return m.updateHolding(id, patch)
}
func (m *mockHoldingService) UpdateHoldingPrice(id string, price float64) (*models.Holding, error) {
	return m.updateHoldingPrice(id, price)
}
func (m *mockHoldingService) DeleteHolding(id string) error { return m.deleteHolding(id) }
func (m *mockHoldingService) GetPortfolio(clientID string) (*analytics.PortfolioPerformance, error) {
	return m.getPortfolio(clientID)
}
func (m *mockHoldingService) GetFirmSummary() (*analytics.Summary, error) {
	return m.getFirmSummary()
}

type mockDashboardService struct {
	getDashboard func() (*services.Dashboard, error)
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func (m *mockDashboardService) GetDashboard() (*services.Dashboard, error) {
	return m.getDashboard()
}

type mockReportService struct {
	buildReport func(clientID, currency string) (*report.Report, error)
}

var _ services.ReportServicer = (*mockReportService)(nil)

func (m *mockReportService) BuildReport(clientID, currency string) (*report.Report, error) {
	return m.buildReport(clientID, currency)
}
func (m *mockReportService) FileName(r *report.Report, f report.Format) string {
	return report.FileName(r.Firm, r.Client.Name, f)
}
