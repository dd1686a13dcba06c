package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/services"
)

// getActor rebuilds the caller from the values AuthMiddleware put in the
// context. Returns ErrUnauthorized if they are missing.
func getActor(c *gin.Context) (services.Actor, error) {
	email := c.GetString(middleware.ContextEmail)
	if email == "" {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	role, _ := c.Get(middleware.ContextRole)
	r, _ := role.(models.Role)
	return services.Actor{Email: email, Name: c.GetString(middleware.ContextName), Role: r}, nil
}

// parsePathID returns a non-blank path parameter.
// Returns ErrInvalidInput if the parameter is empty.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindPage reads page and page_size from the query string.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	page.Defaults()
	return page, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}
