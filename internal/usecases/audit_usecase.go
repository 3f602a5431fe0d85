package usecases

import (
	"context"

	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/pkg/utils"
)

// AuditUsecase reads back the persisted audit trail
type AuditUsecase struct {
	auditRepo repositories.AuditLogRepository
}

// NewAuditUsecase creates a new audit usecase
func NewAuditUsecase(auditRepo repositories.AuditLogRepository) *AuditUsecase {
	return &AuditUsecase{auditRepo: auditRepo}
}

// List returns audit events, optionally filtered by entity name
func (u *AuditUsecase) List(ctx context.Context, entityName string, p utils.PaginationParams) ([]*entities.AuditEvent, int64, error) {
	return u.auditRepo.List(ctx, entityName, p)
}
