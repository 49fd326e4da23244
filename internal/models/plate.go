package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusNormal is the status of a plate with no reported status rows.
const StatusNormal = "Normal"

// Plate is created lazily on the first check of a plate text.
type Plate struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Plate          string    `gorm:"size:10;not null;uniqueIndex" json:"plate"`
	ExistsInSystem bool      `gorm:"not null;default:false" json:"exists_in_system"`
	CreatedAt      time.Time `json:"-"`
}

// PlateStatus rows are append-only; the row with the latest reported_at is
// the plate's current status.
type PlateStatus struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlateID    uuid.UUID `gorm:"type:uuid;not null;index" json:"plate_id"`
	Status     string    `gorm:"size:20;not null" json:"status"`
	Reason     string    `gorm:"size:255" json:"reason"`
	ReportedBy uuid.UUID `gorm:"type:uuid;not null" json:"reported_by"`
	ReportedAt time.Time `gorm:"not null;index" json:"reported_at"`
}

// PlateScan is an append-only log of OCR scan attempts, recorded on every
// check regardless of outcome.
type PlateScan struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlateID    *uuid.UUID `gorm:"type:uuid;index" json:"plate_id"`
	RawText    string     `gorm:"type:text" json:"raw_text"`
	Confidence float64    `json:"confidence"`
	ImagePath  string     `gorm:"size:255" json:"image_path"`
	ScannedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"scanned_by"`
	ScannedAt  time.Time  `gorm:"not null" json:"scanned_at"`
}
