package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Carrier represents a phone carrier, optionally assigned to a user.
type Carrier struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string     `json:"name" gorm:"size:255;not null;index"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Carrier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
