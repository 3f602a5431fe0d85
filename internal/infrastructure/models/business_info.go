package models

import (
	"time"

	"github.com/google/uuid"
)

type BusinessInfo struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName     string    `gorm:"type:varchar(255);not null"`
	RegisteredName   *string
	MerchantCategory *string
	Currency         string `gorm:"type:varchar(3);not null"`
	WebsiteURL       *string
	EmployeeCount    *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (BusinessInfo) TableName() string {
	return "business_infos"
}
