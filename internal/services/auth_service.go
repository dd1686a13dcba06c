package services

import (
	"net/mail"
	"strings"
	"unicode"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
)

// authService implements the mock login. Any well-formed email and non-empty
// password is accepted; nothing is stored.
type authService struct{}

// NewAuthService creates a new AuthServicer.
func NewAuthService() AuthServicer {
	return &authService{}
}

// Login returns the actor for email. An empty role means admin.
func (s *authService) Login(email, password string, role models.Role) (*Actor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid email address")
	}

	if role == "" {
		role = models.RoleAdmin
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	return &Actor{Email: email, Name: DisplayName(email), Role: role}, nil
}

// DisplayName turns the local part of an email into a title-cased name:
// "priya.sharma@dsp.in" becomes "Priya Sharma".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return email
	}
	return strings.Join(words, " ")
}
