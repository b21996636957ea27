package dbmodels

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for all tables.
// Timestamps are epoch milliseconds, which is what the mobile client expects.
type Base struct {
	ID        uuid.UUID `json:"_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt int64     `json:"createdAt" gorm:"autoCreateTime:milli"`
	UpdatedAt int64     `json:"updatedAt" gorm:"autoUpdateTime:milli"`
}

// BeforeCreate will set Base struct before every insert
func (base *Base) BeforeCreate(tx *gorm.DB) error {
	// uuid.New() creates a new random UUID or panics.
	base.ID = uuid.New()
	return nil
}
