package usecases

import (
	"context"
	"encoding/json"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/internal/metrics"
	"merchant-portal.backend/pkg/logger"
)

// emitAudit records an audit event, swallowing emitter failures. The business
// operation must never fail because the audit trail is unavailable; failures
// are logged and counted instead.
func emitAudit(ctx context.Context, emitter repositories.AuditEmitter, event *entities.AuditEvent) {
	if emitter == nil {
		return
	}
	if err := emitter.Record(ctx, event); err != nil {
		metrics.AuditEmitFailures.Inc()
		logger.Error(ctx, "failed to record audit event",
			zap.String("action", event.Action),
			zap.String("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}

// snapshotJSON serializes an entity for audit before/after fields
func snapshotJSON(v interface{}) null.String {
	if v == nil {
		return null.String{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return null.String{}
	}
	return null.StringFrom(string(data))
}
