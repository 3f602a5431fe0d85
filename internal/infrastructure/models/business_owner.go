package models

import (
	"time"

	"github.com/google/uuid"
)

type BusinessOwner struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	IdentificationType   string    `gorm:"type:varchar(50);not null"`
	IdentificationNumber string    `gorm:"type:varchar(100);not null"`
	PhoneNumber          string    `gorm:"type:varchar(30);not null"`
	Email                *string
	Address              *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (BusinessOwner) TableName() string {
	return "business_owners"
}
