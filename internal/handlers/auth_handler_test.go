package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

func setupAuthRouter(svc services.AuthServicer) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/me", injectActor(models.RoleStaff), h.Me)
	r.GET("/anonymous", h.Me)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success issues a token carrying the role", func(t *testing.T) {
		svc := &mockAuthService{
			login: func(email, password string, role models.Role) (*services.Actor, error) {
				if role != models.RoleStaff {
					t.Errorf("expected staff role, got %q", role)
				}
				return &services.Actor{Email: email, Name: "Priya Sharma", Role: role}, nil
			},
		}
		r := setupAuthRouter(svc)

		w := doRequest(r, http.MethodPost, "/auth/login", gin.H{
			"email": "priya.sharma@dsp.in", "password": "anything", "role": "staff",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := parseJSON(t, w)
		token, _ := resp["token"].(string)
		if token == "" {
			t.Fatal("expected token in response")
		}
		claims, err := middleware.ParseAccessToken(token)
		if err != nil {
			t.Fatalf("parse token: %v", err)
		}
		if claims.Email != "priya.sharma@dsp.in" || claims.Role != models.RoleStaff {
			t.Errorf("unexpected claims %+v", claims)
		}
		user, _ := resp["user"].(map[string]any)
		if user["name"] != "Priya Sharma" {
			t.Errorf("expected user name Priya Sharma, got %v", user["name"])
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := setupAuthRouter(&mockAuthService{})
		w := doRequest(r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.in"})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("unknown role", func(t *testing.T) {
		r := setupAuthRouter(&mockAuthService{})
		w := doRequest(r, http.MethodPost, "/auth/login", gin.H{
			"email": "a@b.in", "password": "x", "role": "root",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mockAuthService{
			login: func(string, string, models.Role) (*services.Actor, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid email address")
			},
		}
		r := setupAuthRouter(svc)
		w := doRequest(r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.in", "password": "x"})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	r := setupAuthRouter(&mockAuthService{})

	t.Run("returns the actor", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/me", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := parseJSON(t, w)
		if resp["email"] != "asha.rao@dsp.in" || resp["role"] != "staff" {
			t.Errorf("unexpected actor %v", resp)
		}
	})

	t.Run("no actor in context", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/anonymous", nil)
		assertErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}
