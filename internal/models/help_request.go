package models

import "time"

// HelpRequest represents a call for volunteers.
type HelpRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Urgency     string    `gorm:"size:16;not null" json:"urgency"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"created_by"`
	Volunteers  []User    `gorm:"many2many:help_request_volunteers" json:"volunteers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	// UrgencyLow marks requests that can wait.
	UrgencyLow = "low"
	// UrgencyMedium marks requests that should be handled soon.
	UrgencyMedium = "medium"
	// UrgencyUrgent marks requests needing immediate attention.
	UrgencyUrgent = "urgent"
)

// HasVolunteer reports whether the user already volunteered for the request.
func (h HelpRequest) HasVolunteer(userID uint) bool {
	for _, volunteer := range h.Volunteers {
		if volunteer.ID == userID {
			return true
		}
	}
	return false
}
