package models

import "time"

// Event represents a volunteering event users can join.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `gorm:"size:32;not null" json:"time"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"created_by"`
	Attendees   []User    `gorm:"many2many:event_attendees" json:"attendees"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasAttendee reports whether the user already joined the event.
func (e Event) HasAttendee(userID uint) bool {
	for _, attendee := range e.Attendees {
		if attendee.ID == userID {
			return true
		}
	}
	return false
}
