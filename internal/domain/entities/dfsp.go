package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DFSP represents a financial service provider whose staff register merchants
type DFSP struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	FspID       string      `json:"fspId"`
	LogoURL     null.String `json:"logoUrl,omitempty"`
	IsActive    bool        `json:"isActive"`
	ActivatedAt null.Time   `json:"activatedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// DFSPInput represents DFSP create/update input
type DFSPInput struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	FspID   string `json:"fspId" binding:"required"`
	LogoURL string `json:"logoUrl,omitempty"`
}
