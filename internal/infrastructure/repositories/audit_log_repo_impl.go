package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/infrastructure/models"
	"merchant-portal.backend/pkg/utils"
)

// AuditLogRepositoryImpl persists and reads back audit events. It serves as
// both the AuditEmitter and the AuditLogRepository.
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepositoryImpl {
	return &AuditLogRepositoryImpl{db: db}
}

// Record persists one audit event. Writes always go to the base connection,
// never a caller transaction: an audit row must survive the caller's rollback
// and a failed business write must still leave its failure event behind.
func (r *AuditLogRepositoryImpl) Record(ctx context.Context, event *entities.AuditEvent) error {
	if event.ID == uuid.Nil {
		event.ID = utils.GenerateUUIDv7()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(auditEventToModel(event)).Error
}

// List returns audit events, optionally filtered by entity name, newest first
func (r *AuditLogRepositoryImpl) List(ctx context.Context, entityName string, p utils.PaginationParams) ([]*entities.AuditEvent, int64, error) {
	db := GetDB(ctx, r.db).Model(&models.AuditLog{})
	if entityName != "" {
		db = db.Where("entity_name = ?", entityName)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at desc")
	if p.Limit > 0 {
		query = query.Offset(p.CalculateOffset()).Limit(p.Limit)
	}

	var rows []models.AuditLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	events := make([]*entities.AuditEvent, 0, len(rows))
	for i := range rows {
		events = append(events, auditEventToEntity(&rows[i]))
	}
	return events, total, nil
}
