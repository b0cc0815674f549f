package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// EventCreateRequest describes the payload for creating an event.
type EventCreateRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description" validate:"required,min=3"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Location    string    `json:"location" validate:"required,max=255"`
	Category    string    `json:"category" validate:"required,max=64"`
}

// EventFilter describes query string filters for listing events.
type EventFilter struct {
	Category *string `query:"category"`
	Location *string `query:"location"`
}

// EventResponse is returned to API clients when viewing events.
type EventResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Time        string     `json:"time"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	CreatedBy   UserLite   `json:"created_by"`
	Attendees   []UserLite `json:"attendees"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserLite summarizes a user without exposing full profile data.
type UserLite struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserLite converts a User model into its summary DTO.
func NewUserLite(model models.User) UserLite {
	return UserLite{ID: model.ID, Name: model.Name, Email: model.Email}
}

// NewUserLiteSlice converts user models into summary DTOs.
func NewUserLiteSlice(users []models.User) []UserLite {
	lite := make([]UserLite, 0, len(users))
	for _, user := range users {
		lite = append(lite, NewUserLite(user))
	}

	return lite
}

// NewEventResponse converts an Event model into a DTO.
func NewEventResponse(model models.Event) EventResponse {
	return EventResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Date:        model.Date,
		Time:        model.Time,
		Location:    model.Location,
		Category:    model.Category,
		CreatedBy:   NewUserLite(model.CreatedBy),
		Attendees:   NewUserLiteSlice(model.Attendees),
		CreatedAt:   model.CreatedAt,
	}
}

// NewEventResponseSlice converts event models into DTOs.
func NewEventResponseSlice(models []models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(models))
	for _, event := range models {
		responses = append(responses, NewEventResponse(event))
	}

	return responses
}
