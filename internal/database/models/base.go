package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedActor is recorded as the author of rows written by the seed loader
const SeedActor = "seed"

// BaseModel carries the UUID key and audit columns shared by every table
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"size:100" validate:"max=100"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"size:100" validate:"max=100"`
}

// Stamp records actor as the last writer, and as the creator of a row not yet stored
func (base *BaseModel) Stamp(actor string) {
	if base.ID == uuid.Nil && base.CreatedBy == "" {
		base.CreatedBy = actor
	}
	base.UpdatedBy = actor
}

// BeforeCreate assigns a UUID when the caller did not
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
