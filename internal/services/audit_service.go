package services

import "github.com/soaringjerry/myndwell/internal/models"

// AuditStore is read-only: nothing in the service layer writes audit logs.
type AuditStore interface {
	ListAuditLogs() []*models.AuditLog
}

type AuditService struct {
	store AuditStore
}

func NewAuditService(store AuditStore) *AuditService { return &AuditService{store: store} }

func (s *AuditService) List() []*models.AuditLog {
	return s.store.ListAuditLogs()
}
