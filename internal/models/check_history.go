package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckHistory is the audit trail of every check-plate call. The plate text
// is stored denormalized so history survives independent of the Plate row.
type CheckHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Plate     string    `gorm:"size:10;not null;index" json:"plate"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    string    `gorm:"size:50;not null" json:"status"`
	CheckedAt time.Time `gorm:"not null;index" json:"checked_at"`
}
