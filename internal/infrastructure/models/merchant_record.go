package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MerchantRecord struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DFSPID                   *uuid.UUID
	RegistrationStatus       string `gorm:"type:varchar(20);not null;default:'draft';index"`
	RegistrationStatusReason *string
	MakerID                  uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckedByID              *uuid.UUID
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

func (MerchantRecord) TableName() string {
	return "merchant_records"
}
