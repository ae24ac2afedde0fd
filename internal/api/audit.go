package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
	"go.uber.org/zap"
)

const auditActor = "api"

// audit records a change made through the HTTP surface. A patch, when
// given, is stored as its JSON object form with unset fields dropped.
func (rt *Router) audit(c *gin.Context, action, entityType, entityID string, patch any) {
	entry := &models.AuditLog{
		ID:         services.NewID(),
		Actor:      auditActor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Diff:       diffOf(patch),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Timestamp:  rt.now(),
	}
	rt.store.AddAuditLog(entry)
	rt.log.Debug("audit",
		zap.String("action", action),
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
	)
}

func diffOf(patch any) map[string]any {
	out := map[string]any{}
	if patch == nil {
		return out
	}
	b, err := json.Marshal(patch)
	if err != nil {
		return out
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return out
	}
	for k, v := range all {
		if v != nil {
			out[k] = v
		}
	}
	return out
}
