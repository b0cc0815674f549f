package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// TeamCreateRequest describes the payload for creating a team.
type TeamCreateRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3"`
	IsPrivate   bool   `json:"isPrivate"`
}

// TeamResponse is returned to API clients when viewing teams.
type TeamResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsPrivate   bool       `json:"is_private"`
	CreatedBy   UserLite   `json:"created_by"`
	Members     []UserLite `json:"members"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTeamResponse converts a Team model into a DTO.
func NewTeamResponse(model models.Team) TeamResponse {
	return TeamResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		IsPrivate:   model.IsPrivate,
		CreatedBy:   NewUserLite(model.CreatedBy),
		Members:     NewUserLiteSlice(model.Members),
		CreatedAt:   model.CreatedAt,
	}
}

// NewTeamResponseSlice converts team models into DTOs.
func NewTeamResponseSlice(models []models.Team) []TeamResponse {
	responses := make([]TeamResponse, 0, len(models))
	for _, team := range models {
		responses = append(responses, NewTeamResponse(team))
	}

	return responses
}
