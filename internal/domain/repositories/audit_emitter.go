package repositories

import (
	"context"

	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/pkg/utils"
)

// AuditEmitter records audit events for state-changing operations. Callers
// treat emission as fire-and-forget: a failed Record must be logged by the
// caller and never propagated as a user-facing error.
type AuditEmitter interface {
	Record(ctx context.Context, event *entities.AuditEvent) error
}

// AuditLogRepository reads back the persisted audit trail
type AuditLogRepository interface {
	List(ctx context.Context, entityName string, p utils.PaginationParams) ([]*entities.AuditEvent, int64, error)
}
