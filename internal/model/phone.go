package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phone represents a phone model in the catalog.
type Phone struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null;index"`
	Status         string    `json:"status" gorm:"size:64;not null"`
	ManufacturerID uuid.UUID `json:"manufacturer_id" gorm:"type:char(36);index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Manufacturer *Manufacturer `json:"manufacturer,omitempty" gorm:"foreignKey:ManufacturerID"`
	Carriers     []Carrier     `json:"carriers,omitempty" gorm:"many2many:phone_carriers"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Phone) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
