package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a volunteer account referenced by events, teams and impact logs.
// PasswordHash is a bcrypt digest and never leaves the API.
type User struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"size:255;not null" json:"name"`
	Email        string                      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string                      `gorm:"size:255;not null" json:"-"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Causes       datatypes.JSONSlice[string] `json:"causes"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
