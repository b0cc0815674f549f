package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// HelpRequestCreateRequest describes the payload for posting a help request.
type HelpRequestCreateRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3"`
	Urgency     string `json:"urgency" validate:"required,oneof=low medium urgent"`
	Location    string `json:"location" validate:"required,max=255"`
}

// HelpRequestFilter describes query string filters for listing help requests.
type HelpRequestFilter struct {
	Urgency  *string `query:"urgency" validate:"omitempty,oneof=low medium urgent"`
	Location *string `query:"location"`
}

// HelpRequestResponse is returned to API clients when viewing help requests.
type HelpRequestResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Urgency     string     `json:"urgency"`
	Location    string     `json:"location"`
	CreatedBy   UserLite   `json:"created_by"`
	Volunteers  []UserLite `json:"volunteers"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewHelpRequestResponse converts a HelpRequest model into a DTO.
func NewHelpRequestResponse(model models.HelpRequest) HelpRequestResponse {
	return HelpRequestResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Urgency:     model.Urgency,
		Location:    model.Location,
		CreatedBy:   NewUserLite(model.CreatedBy),
		Volunteers:  NewUserLiteSlice(model.Volunteers),
		CreatedAt:   model.CreatedAt,
	}
}

// NewHelpRequestResponseSlice converts help request models into DTOs.
func NewHelpRequestResponseSlice(models []models.HelpRequest) []HelpRequestResponse {
	responses := make([]HelpRequestResponse, 0, len(models))
	for _, request := range models {
		responses = append(responses, NewHelpRequestResponse(request))
	}

	return responses
}
