package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// LogHoursRequest describes the payload for logging volunteer hours. Any
// positive amount is accepted; plausibility is the verifier's call.
type LogHoursRequest struct {
	EventID uint    `json:"eventId" validate:"required,gt=0"`
	Hours   float64 `json:"hours" validate:"required,gt=0"`
}

// VerifyHoursRequest describes the payload for verifying a logged entry.
type VerifyHoursRequest struct {
	LogID uint `json:"logId" validate:"required,gt=0"`
}

// ImpactLogResponse is returned to API clients when viewing impact logs.
type ImpactLogResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	EventID    uint      `json:"event_id"`
	Hours      float64   `json:"hours"`
	Status     string    `json:"status"`
	VerifiedBy *uint     `json:"verified_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserPointsResponse summarizes a user's verified impact.
type UserPointsResponse struct {
	UserID      uint    `json:"userId"`
	TotalHours  float64 `json:"totalHours"`
	TotalPoints float64 `json:"totalPoints"`
	Certificate *string `json:"certificate"`
}

// LeaderboardEntry is one ranked row of the public leaderboard.
type LeaderboardEntry struct {
	UserID     uint    `json:"_id"`
	TotalHours float64 `json:"totalHours"`
}

// NewImpactLogResponse converts an ImpactLog model into a DTO.
func NewImpactLogResponse(model models.ImpactLog) ImpactLogResponse {
	return ImpactLogResponse{
		ID:         model.ID,
		UserID:     model.UserID,
		EventID:    model.EventID,
		Hours:      model.Hours,
		Status:     model.Status,
		VerifiedBy: model.VerifiedByID,
		CreatedAt:  model.CreatedAt,
	}
}
