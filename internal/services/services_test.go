package services

import (
	"wealthdesk/internal/logger"
	"wealthdesk/internal/models"
)

func init() {
	logger.Init("test")
}

var (
	admin = Actor{Email: "asha.rao@dsp.in", Name: "Asha Rao", Role: models.RoleAdmin}
	staff = Actor{Email: "kiran@dsp.in", Name: "Kiran", Role: models.RoleStaff}
)

func ptr[T any](v T) *T { return &v }
