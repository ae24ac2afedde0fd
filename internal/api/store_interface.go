package api

import (
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

// Store is the repository the router and the services share. Reads return
// copies; the only in-place mutation is the callback passed to Update*.
type Store interface {
	services.Store

	AddAuditLog(a *models.AuditLog)
	Counts() map[string]int
}

var _ Store = (*memoryStore)(nil)
