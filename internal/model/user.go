package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role enumerates user privilege levels.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// User represents one account, keyed by email or phone. Both identifiers are
// optional with sparse uniqueness: the unique indexes skip NULL values, so
// uniqueness is only enforced among users that define the field. At least one
// of the two is always set at creation; the auth service guarantees it.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        *string   `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Phone        *string   `json:"phone,omitempty" gorm:"uniqueIndex;size:32"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:16;default:'User'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Carriers []Carrier `json:"carriers,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
