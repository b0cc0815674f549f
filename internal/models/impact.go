package models

import "time"

// ImpactLog records one claimed unit of volunteer service. Hours and CreatedAt
// are immutable after creation; the only permitted mutation is the pending to
// verified transition performed by the impact service.
type ImpactLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	EventID      uint      `gorm:"not null;index" json:"event_id"`
	Hours        float64   `gorm:"not null" json:"hours"`
	Status       string    `gorm:"size:16;not null;index" json:"status"`
	VerifiedByID *uint     `json:"verified_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	// ImpactStatusPending indicates logged hours awaiting verification.
	ImpactStatusPending = "pending"
	// ImpactStatusVerified indicates the hours were confirmed. Terminal state.
	ImpactStatusVerified = "verified"
)

// IsVerified reports whether the log reached its terminal state.
func (l ImpactLog) IsVerified() bool {
	return l.Status == ImpactStatusVerified
}
