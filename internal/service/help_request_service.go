package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/dto"
	"github.com/volunteerhub/volunteerhub-api/internal/models"
	"github.com/volunteerhub/volunteerhub-api/internal/repository"
)

// ErrHelpRequestNotFound indicates a help request could not be found.
var ErrHelpRequestNotFound = errors.New("help request not found")

// ErrAlreadyVolunteered indicates the user already volunteered for the request.
var ErrAlreadyVolunteered = errors.New("already volunteered for this request")

// HelpRequestService orchestrates help request workflows.
type HelpRequestService interface {
	Create(ctx context.Context, creatorID uint, payload dto.HelpRequestCreateRequest) (dto.HelpRequestResponse, error)
	List(ctx context.Context, filter dto.HelpRequestFilter) ([]dto.HelpRequestResponse, error)
	GetByID(ctx context.Context, id uint) (dto.HelpRequestResponse, error)
	Volunteer(ctx context.Context, id, userID uint) (dto.HelpRequestResponse, error)
	Delete(ctx context.Context, id, userID uint) error
}

type helpRequestService struct {
	requests  repository.HelpRequestRepository
	users     repository.UserRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewHelpRequestService constructs a HelpRequestService instance.
func NewHelpRequestService(requests repository.HelpRequestRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) HelpRequestService {
	return &helpRequestService{
		requests:  requests,
		users:     users,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "help_request_service").Logger(),
	}
}

func (s *helpRequestService) Create(ctx context.Context, creatorID uint, payload dto.HelpRequestCreateRequest) (dto.HelpRequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.HelpRequestResponse{}, err
	}

	request := models.HelpRequest{
		Title:       strings.TrimSpace(s.sanitizer.Sanitize(payload.Title)),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		Urgency:     payload.Urgency,
		Location:    strings.TrimSpace(payload.Location),
		CreatedByID: creatorID,
	}

	if err := s.requests.Create(ctx, &request); err != nil {
		return dto.HelpRequestResponse{}, err
	}

	created, err := s.requests.GetByID(ctx, request.ID)
	if err != nil {
		return dto.HelpRequestResponse{}, err
	}

	s.logger.Info().Uint("help_request_id", created.ID).Uint("creator_id", creatorID).Msg("help request created")

	return dto.NewHelpRequestResponse(created), nil
}

func (s *helpRequestService) List(ctx context.Context, filter dto.HelpRequestFilter) ([]dto.HelpRequestResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	repoFilter := repository.HelpRequestFilter{
		Urgency:  filter.Urgency,
		Location: filter.Location,
	}

	requests, err := s.requests.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return dto.NewHelpRequestResponseSlice(requests), nil
}

func (s *helpRequestService) GetByID(ctx context.Context, id uint) (dto.HelpRequestResponse, error) {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return dto.HelpRequestResponse{}, err
	}

	return dto.NewHelpRequestResponse(request), nil
}

func (s *helpRequestService) Volunteer(ctx context.Context, id, userID uint) (dto.HelpRequestResponse, error) {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return dto.HelpRequestResponse{}, err
	}

	if request.HasVolunteer(userID) {
		return dto.HelpRequestResponse{}, ErrAlreadyVolunteered
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.HelpRequestResponse{}, ErrUserNotFound
		}
		return dto.HelpRequestResponse{}, err
	}

	if err := s.requests.AddVolunteer(ctx, &request, user); err != nil {
		return dto.HelpRequestResponse{}, err
	}

	updated, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return dto.HelpRequestResponse{}, err
	}

	s.logger.Info().Uint("help_request_id", id).Uint("user_id", userID).Msg("user volunteered")

	return dto.NewHelpRequestResponse(updated), nil
}

func (s *helpRequestService) Delete(ctx context.Context, id, userID uint) error {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return err
	}

	if request.CreatedByID != userID {
		return ErrForbidden
	}

	if err := s.requests.Delete(ctx, &request); err != nil {
		return err
	}

	s.logger.Info().Uint("help_request_id", id).Msg("help request deleted")

	return nil
}

func (s *helpRequestService) getRequest(ctx context.Context, id uint) (models.HelpRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HelpRequest{}, ErrHelpRequestNotFound
		}
		return models.HelpRequest{}, err
	}

	return request, nil
}
