package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// RegisterRequest describes the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest describes the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the bearer token issued on registration and login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserLite `json:"user"`
}

// ProfileUpdateRequest describes the patchable profile fields. Absent fields
// are left untouched.
type ProfileUpdateRequest struct {
	Name   *string   `json:"name" validate:"omitempty,min=3,max=255"`
	Skills *[]string `json:"skills"`
	Causes *[]string `json:"causes"`
}

// ProfileResponse is returned to API clients when viewing the own profile.
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Skills    []string  `json:"skills"`
	Causes    []string  `json:"causes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfileResponse converts a User model into its profile DTO.
func NewProfileResponse(model models.User) ProfileResponse {
	return ProfileResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Skills:    model.Skills,
		Causes:    model.Causes,
		CreatedAt: model.CreatedAt,
	}
}
