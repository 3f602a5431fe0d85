package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactPerson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(30);not null"`
	Email       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ContactPerson) TableName() string {
	return "contact_persons"
}
