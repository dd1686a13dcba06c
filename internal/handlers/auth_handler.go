package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// AuthHandler handles the mock login.
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload. Any password is accepted.
type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"omitempty,role" example:"admin"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      services.Actor `json:"user"`
}

// Login handles the mock login
// @Summary     Login
// @Description Accept any email and password and issue a token carrying the chosen role label
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials and role"
// @Success     200 {object} AuthResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	actor, err := h.authService.Login(req.Email, req.Password, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, expires, err := middleware.GenerateAccessToken(actor.Email, actor.Name, actor.Role)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, ExpiresAt: expires, User: *actor})
}

// Me returns the signed-in staff member
// @Summary     Current user
// @Description Return the email, display name and role carried by the token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Actor
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, actor)
}
