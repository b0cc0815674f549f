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

// ErrEventNotFound indicates an event could not be found.
var ErrEventNotFound = errors.New("event not found")

// ErrAlreadyAttending indicates the user already joined the event.
var ErrAlreadyAttending = errors.New("already attending this event")

// ErrForbidden indicates the caller does not own the resource.
var ErrForbidden = errors.New("not allowed")

// EventService orchestrates event workflows.
type EventService interface {
	Create(ctx context.Context, creatorID uint, payload dto.EventCreateRequest) (dto.EventResponse, error)
	List(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error)
	GetByID(ctx context.Context, id uint) (dto.EventResponse, error)
	Join(ctx context.Context, id, userID uint) (dto.EventResponse, error)
	Delete(ctx context.Context, id, userID uint) error
}

type eventService struct {
	events    repository.EventRepository
	users     repository.UserRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewEventService constructs an EventService instance.
func NewEventService(events repository.EventRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) EventService {
	return &eventService{
		events:    events,
		users:     users,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) Create(ctx context.Context, creatorID uint, payload dto.EventCreateRequest) (dto.EventResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, err
	}

	event := models.Event{
		Title:       strings.TrimSpace(s.sanitizer.Sanitize(payload.Title)),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		Date:        payload.Date,
		Time:        payload.Time,
		Location:    strings.TrimSpace(payload.Location),
		Category:    strings.TrimSpace(payload.Category),
		CreatedByID: creatorID,
	}

	if err := s.events.Create(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}

	created, err := s.events.GetByID(ctx, event.ID)
	if err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().Uint("event_id", created.ID).Uint("creator_id", creatorID).Msg("event created")

	return dto.NewEventResponse(created), nil
}

func (s *eventService) List(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error) {
	repoFilter := repository.EventFilter{
		Category: filter.Category,
		Location: filter.Location,
	}

	events, err := s.events.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return dto.NewEventResponseSlice(events), nil
}

func (s *eventService) GetByID(ctx context.Context, id uint) (dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}

	return dto.NewEventResponse(event), nil
}

func (s *eventService) Join(ctx context.Context, id, userID uint) (dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}

	if event.HasAttendee(userID) {
		return dto.EventResponse{}, ErrAlreadyAttending
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrUserNotFound
		}
		return dto.EventResponse{}, err
	}

	if err := s.events.AddAttendee(ctx, &event, user); err != nil {
		return dto.EventResponse{}, err
	}

	joined, err := s.events.GetByID(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().Uint("event_id", id).Uint("user_id", userID).Msg("user joined event")

	return dto.NewEventResponse(joined), nil
}

func (s *eventService) Delete(ctx context.Context, id, userID uint) error {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}

	if event.CreatedByID != userID {
		return ErrForbidden
	}

	if err := s.events.Delete(ctx, &event); err != nil {
		return err
	}

	s.logger.Info().Uint("event_id", id).Msg("event deleted")

	return nil
}

func (s *eventService) getEvent(ctx context.Context, id uint) (models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}

	return event, nil
}
