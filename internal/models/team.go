package models

import "time"

// Team represents a group of volunteers. Private teams require an invite and
// cannot be joined directly.
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsPrivate   bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedBy   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"created_by"`
	Members     []User    `gorm:"many2many:team_members" json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasMember reports whether the user belongs to the team.
func (t Team) HasMember(userID uint) bool {
	for _, member := range t.Members {
		if member.ID == userID {
			return true
		}
	}
	return false
}
