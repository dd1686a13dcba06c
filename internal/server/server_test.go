package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"wealthdesk/internal/config"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/testutil"
	"wealthdesk/internal/validator"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		JWTSecret:        "flow-secret",
		JWTExpirationDur: time.Hour,
		FirmName:         "DS Partners",
		ReportCurrency:   "INR",
	}
}

// setupApp builds the full stack over an isolated in-memory SQLite store.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	cfg := testConfig()
	config.Set(cfg)

	now := testutil.Clock(testutil.FixedNow)
	repos := repository.New(testutil.SetupTestStore(t), now)
	return &testApp{Router: NewRouter(NewServices(repos, now, cfg))}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// login signs in with role and returns the access token.
func (app *testApp) login(t *testing.T, email, role string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"pw","role":%q}`, email, role)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// createClient adds a client and returns its ID.
func (app *testApp) createClient(t *testing.T, token, name string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"company":"Mehta Exports","email":"rahul@mehta.in"}`, name)
	rec := app.request("POST", "/api/v1/clients", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	app := setupApp(t)

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("parse doc: %v", err)
	}

	param := regexp.MustCompile(`:(\w+)`)
	count := 0
	for _, r := range app.Router.Routes() {
		path, ok := strings.CutPrefix(r.Path, "/api/v1")
		if !ok {
			continue
		}
		count++
		path = param.ReplaceAllString(path, "{$1}")
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Errorf("%s %s is not documented", r.Method, path)
		}
	}
	if count == 0 {
		t.Fatal("no api routes registered")
	}
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	// Protected routes need a token
	rec := app.request("GET", "/api/v1/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token := app.login(t, "Priya.Sharma@dsp.in", "staff")
	rec = app.request("GET", "/api/v1/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	me := parseJSON(t, rec)
	if me["email"] != "priya.sharma@dsp.in" || me["name"] != "Priya Sharma" || me["role"] != "staff" {
		t.Errorf("unexpected actor %v", me)
	}
}

func TestClientFlow_NotesHoldingsTasksReport(t *testing.T) {
	app := setupApp(t)
	token := app.login(t, "asha.rao@dsp.in", "admin")

	// Step 1: Create client, defaults applied
	clientID := app.createClient(t, token, "Rahul Mehta")
	rec := app.request("GET", "/api/v1/clients/"+clientID, "", token)
	client := parseJSON(t, rec)
	if client["status"] != "Lead" || client["owner"] != "Asha Rao" {
		t.Errorf("expected Lead owned by Asha Rao, got %v / %v", client["status"], client["owner"])
	}

	// Step 2: Add a note
	rec = app.request("POST", "/api/v1/clients/"+clientID+"/notes", `{"content":"Discussed SIP top-up"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add note failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/clients/"+clientID+"/notes", "", token)
	if notes := parseJSON(t, rec)["notes"].([]any); len(notes) != 1 {
		t.Errorf("expected 1 note, got %d", len(notes))
	}

	// Step 3: Add a holding bought two years ago
	rec = app.request("POST", "/api/v1/clients/"+clientID+"/holdings",
		`{"asset_class":"Mutual Funds","name":"Parag Parikh Flexi Cap","purchase_date":"2022-06-10","units":100,"average_cost":50,"current_price":72}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holding failed: %d %s", rec.Code, rec.Body.String())
	}
	holdingID := parseJSON(t, rec)["id"].(string)

	rec = app.request("GET", "/api/v1/clients/"+clientID+"/portfolio", "", token)
	perf := parseJSON(t, rec)
	if perf["gain"] != float64(2200) {
		t.Errorf("expected gain 2200, got %v", perf["gain"])
	}

	// Step 4: Reprice and check the firm summary
	rec = app.request("PATCH", "/api/v1/holdings/"+holdingID+"/price", `{"current_price":80}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update price failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/portfolio/summary", "", token)
	summary := parseJSON(t, rec)
	if summary["total_current"] != float64(8000) || summary["total_invested"] != float64(5000) {
		t.Errorf("unexpected summary %v", summary)
	}

	// Step 5: Task appears on the board
	body := fmt.Sprintf(`{"client_id":%q,"title":"Collect KYC","due_date":"2024-06-20","priority":"High"}`, clientID)
	rec = app.request("POST", "/api/v1/tasks", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/tasks/board", "", token)
	cols := parseJSON(t, rec)["columns"].([]any)
	pending := cols[0].(map[string]any)["tasks"].([]any)
	if len(pending) != 1 {
		t.Errorf("expected 1 pending task, got %d", len(pending))
	}

	// Step 6: Reports
	rec = app.request("GET", "/api/v1/clients/"+clientID+"/report/json", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("json report failed: %d %s", rec.Code, rec.Body.String())
	}
	rep := parseJSON(t, rec)
	if rep["currency"] != "INR" || rep["firm"] != "DS Partners" {
		t.Errorf("unexpected report header %v / %v", rep["currency"], rep["firm"])
	}
	if tasks := rep["pending_tasks"].([]any); len(tasks) != 1 {
		t.Errorf("expected 1 pending task in report, got %d", len(tasks))
	}

	rec = app.request("GET", "/api/v1/clients/"+clientID+"/report/pdf", "", token)
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Errorf("expected a PDF document, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="DS_Partners_Report_Rahul_Mehta.pdf"` {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
}

func TestClientFlow_DeleteNeedsAdmin(t *testing.T) {
	app := setupApp(t)
	admin := app.login(t, "asha.rao@dsp.in", "admin")
	staff := app.login(t, "vikram@dsp.in", "staff")

	clientID := app.createClient(t, staff, "Kavya Iyer")

	rec := app.request("DELETE", "/api/v1/clients/"+clientID, "", staff)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff, got %d", rec.Code)
	}

	rec = app.request("DELETE", "/api/v1/clients/"+clientID, "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/clients/"+clientID, "", admin)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestClientFlow_ExportImport(t *testing.T) {
	app := setupApp(t)
	token := app.login(t, "asha.rao@dsp.in", "admin")
	app.createClient(t, token, "Rahul Mehta")

	rec := app.request("GET", "/api/v1/clients/export", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed: %d", rec.Code)
	}
	exported := rec.Body.String()
	if !strings.Contains(exported, "Rahul Mehta") {
		t.Fatalf("expected client in export, got %q", exported)
	}

	// Importing the export adds a second copy
	req := httptest.NewRequest("POST", "/api/v1/clients/import", strings.NewReader(exported))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("import failed: %d %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["imported"] != float64(1) {
		t.Errorf("expected 1 imported, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/clients?search=mehta", "", token)
	if total := parseJSON(t, rec)["total_items"]; total != float64(2) {
		t.Errorf("expected 2 matching clients, got %v", total)
	}
}
