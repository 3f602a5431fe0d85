package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action      string    `gorm:"type:varchar(50);not null;index"`
	Outcome     string    `gorm:"type:varchar(20);not null"`
	ActorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EntityName  string    `gorm:"type:varchar(100);not null;index"`
	EntityID    string    `gorm:"type:varchar(100);not null"`
	Description *string
	Before      *string `gorm:"type:jsonb"`
	After       *string `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
