package models

import (
	"time"

	"github.com/google/uuid"
)

type LocationInfo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationType string    `gorm:"type:varchar(50);not null"`
	Address      string    `gorm:"type:text;not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	District     *string
	Country      string `gorm:"type:varchar(100);not null"`
	PostalCode   *string
	Latitude     *string
	Longitude    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (LocationInfo) TableName() string {
	return "location_infos"
}
