package models

import (
	"time"

	"github.com/google/uuid"
)

type BusinessLicense struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LicenseNumber string    `gorm:"type:varchar(100);not null"`
	DocumentURL   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BusinessLicense) TableName() string {
	return "business_licenses"
}
