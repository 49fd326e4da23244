package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:128;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:512;not null" json:"-"`
	Email     string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	Role      string    `gorm:"size:32;not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"-"`
}
