package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a back-office staff member
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Role         Role          `json:"role"`
	DFSPID       uuid.NullUUID `json:"dfspId,omitempty"`
	PasswordHash string        `json:"-"`
	IsActive     bool          `json:"isActive"`
	LastLoginAt  null.Time     `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Actor builds the capability-carrying identity for this user
func (u *User) Actor() *Actor {
	return &Actor{
		ID:          u.ID,
		Email:       u.Email,
		Permissions: RolePermissions(u.Role),
	}
}

// RegisterInput represents staff registration input
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=8"`
	Role     Role   `json:"role" binding:"required"`
	DFSPID   string `json:"dfspId,omitempty"`
}

// LoginInput represents staff login input
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	UserID       string   `json:"userId"`
	Email        string   `json:"email"`
	Role         Role     `json:"role"`
	Permissions  []string `json:"permissions"`
}
