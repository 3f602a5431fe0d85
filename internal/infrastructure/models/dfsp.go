package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DFSP struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	FspID       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	LogoURL     *string
	IsActive    bool `gorm:"not null;default:true"`
	ActivatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DFSP) TableName() string {
	return "dfsps"
}
