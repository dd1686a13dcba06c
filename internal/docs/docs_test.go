package docs

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

type document struct {
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

type operation struct {
	Parameters []struct {
		Name     string          `json:"name"`
		In       string          `json:"in"`
		Required bool            `json:"required"`
		Schema   json.RawMessage `json:"schema"`
	} `json:"parameters"`
	Responses map[string]json.RawMessage `json:"responses"`
}

func readDocument(t *testing.T) (string, document) {
	t.Helper()
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	return raw, doc
}

func TestDocument_RefsResolve(t *testing.T) {
	raw, doc := readDocument(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	if len(refs) == 0 {
		t.Fatal("expected schema references")
	}
	for _, m := range refs {
		if _, ok := doc.Definitions[m[1]]; !ok {
			t.Errorf("reference to undefined %s", m[1])
		}
	}
	for _, name := range []string{
		"handlers.CreateClientRequest", "handlers.ErrorResponse", "models.Client",
		"models.Holding", "analytics.PortfolioPerformance", "pagination.PageResponse-models_Client",
	} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("missing definition %s", name)
		}
	}
}

func TestDocument_PathParameters(t *testing.T) {
	_, doc := readDocument(t)

	placeholder := regexp.MustCompile(`\{(\w+)\}`)
	for path, ops := range doc.Paths {
		for method, op := range ops {
			for _, m := range placeholder.FindAllStringSubmatch(path, -1) {
				found := false
				for _, p := range op.Parameters {
					if p.In == "path" && p.Name == m[1] && p.Required {
						found = true
					}
				}
				if !found {
					t.Errorf("%s %s: no required path parameter %q", method, path, m[1])
				}
			}
			if len(op.Responses) < 2 {
				t.Errorf("%s %s: expected success and error responses", method, path)
			}
		}
	}
}

func TestDocument_RequestBodies(t *testing.T) {
	_, doc := readDocument(t)

	tests := []struct {
		path, method, schema string
	}{
		{"/auth/login", "post", "handlers.LoginRequest"},
		{"/clients", "post", "handlers.CreateClientRequest"},
		{"/clients/{id}", "put", "handlers.UpdateClientRequest"},
		{"/clients/{id}/holdings", "post", "handlers.CreateHoldingRequest"},
		{"/holdings/{id}/price", "patch", "handlers.UpdatePriceRequest"},
		{"/tasks/{id}/status", "patch", "handlers.UpdateTaskStatusRequest"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			op, ok := doc.Paths[tt.path][tt.method]
			if !ok {
				t.Fatal("operation not documented")
			}
			for _, p := range op.Parameters {
				if p.In == "body" {
					if !strings.Contains(string(p.Schema), "#/definitions/"+tt.schema) {
						t.Errorf("expected body schema %s, got %s", tt.schema, p.Schema)
					}
					return
				}
			}
			t.Error("no body parameter")
		})
	}
}

func TestSwaggerInfo_MatchesAPIAnnotations(t *testing.T) {
	src, err := os.ReadFile("../../cmd/api/main.go")
	if err != nil {
		t.Fatalf("read main.go: %v", err)
	}
	want := map[string]string{
		"title":       SwaggerInfo.Title,
		"version":     SwaggerInfo.Version,
		"description": SwaggerInfo.Description,
		"host":        SwaggerInfo.Host,
		"BasePath":    SwaggerInfo.BasePath,
	}
	for key, value := range want {
		m := regexp.MustCompile(`(?m)^// @` + key + `\s+(.+)$`).FindSubmatch(src)
		if m == nil {
			t.Errorf("no @%s annotation", key)
			continue
		}
		if got := strings.TrimSpace(string(m[1])); got != value {
			t.Errorf("@%s is %q, SwaggerInfo has %q", key, got, value)
		}
	}
}
