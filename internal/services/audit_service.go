package services

import (
	"go.uber.org/zap"

	"wealthdesk/internal/logger"
)

// auditService records who changed what. Entries go to the "audit" logger.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer.
func NewAuditService() AuditServicer {
	return &auditService{log: logger.Named("audit")}
}

// Log records an audit event. It never fails the calling operation.
func (s *auditService) Log(actor Actor, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	fields := []any{
		"actor", actor.Email,
		"role", actor.Role,
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip_address", ipAddress,
	}
	if len(changes) > 0 {
		fields = append(fields, "changes", changes)
	}
	s.log.Infow("audit", fields...)
}
