package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/dto"
	"github.com/volunteerhub/volunteerhub-api/internal/models"
	"github.com/volunteerhub/volunteerhub-api/internal/repository"
)

type eventRepoStub struct {
	events     map[uint]models.Event
	nextID     uint
	lastFilter repository.EventFilter
}

func newEventRepoStub() *eventRepoStub {
	return &eventRepoStub{events: map[uint]models.Event{}, nextID: 1}
}

func (r *eventRepoStub) List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	r.lastFilter = filter
	var events []models.Event
	for _, event := range r.events {
		if filter.Category != nil && event.Category != *filter.Category {
			continue
		}
		if filter.Location != nil && event.Location != *filter.Location {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *eventRepoStub) GetByID(ctx context.Context, id uint) (models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return models.Event{}, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (r *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	r.nextID++
	r.events[event.ID] = *event
	return nil
}

func (r *eventRepoStub) AddAttendee(ctx context.Context, event *models.Event, user models.User) error {
	stored := r.events[event.ID]
	stored.Attendees = append(stored.Attendees, user)
	r.events[event.ID] = stored
	return nil
}

func (r *eventRepoStub) Delete(ctx context.Context, event *models.Event) error {
	delete(r.events, event.ID)
	return nil
}

func validEventRequest() dto.EventCreateRequest {
	return dto.EventCreateRequest{
		Title:       "Park Cleanup",
		Description: "Help clean the riverside park",
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Location:    "Riverside Park",
		Category:    "environment",
	}
}

func TestEventServiceCreate(t *testing.T) {
	repo := newEventRepoStub()
	users := &userRepoStub{users: map[uint]models.User{1: {ID: 1, Name: "Alice"}}}
	svc := NewEventService(repo, users, validator.New(), testLogger())

	event, err := svc.Create(context.Background(), 1, validEventRequest())
	require.NoError(t, err)
	require.NotZero(t, event.ID)
	require.Equal(t, "Park Cleanup", event.Title)
}

func TestEventServiceCreateSanitizesMarkup(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, &userRepoStub{}, validator.New(), testLogger())

	payload := validEventRequest()
	payload.Title = "Park Cleanup <script>alert(1)</script>"
	payload.Description = "<b>Bring gloves</b> and water"

	event, err := svc.Create(context.Background(), 1, payload)
	require.NoError(t, err)
	require.Equal(t, "Park Cleanup", event.Title)
	require.NotContains(t, event.Description, "<b>")
	require.Contains(t, event.Description, "Bring gloves")
}

func TestEventServiceCreateRejectsInvalidPayload(t *testing.T) {
	svc := NewEventService(newEventRepoStub(), &userRepoStub{}, validator.New(), testLogger())

	payload := validEventRequest()
	payload.Title = ""

	_, err := svc.Create(context.Background(), 1, payload)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestEventServiceGetByIDNotFound(t *testing.T) {
	svc := NewEventService(newEventRepoStub(), &userRepoStub{}, validator.New(), testLogger())

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventServiceJoin(t *testing.T) {
	repo := newEventRepoStub()
	users := &userRepoStub{users: map[uint]models.User{2: {ID: 2, Name: "Bob"}}}
	svc := NewEventService(repo, users, validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validEventRequest())
	require.NoError(t, err)

	joined, err := svc.Join(context.Background(), created.ID, 2)
	require.NoError(t, err)
	require.Len(t, joined.Attendees, 1)
	require.Equal(t, uint(2), joined.Attendees[0].ID)
}

func TestEventServiceJoinRejectsDuplicate(t *testing.T) {
	repo := newEventRepoStub()
	users := &userRepoStub{users: map[uint]models.User{2: {ID: 2, Name: "Bob"}}}
	svc := NewEventService(repo, users, validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validEventRequest())
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), created.ID, 2)
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), created.ID, 2)
	require.ErrorIs(t, err, ErrAlreadyAttending)
}

func TestEventServiceDeleteRequiresCreator(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, &userRepoStub{}, validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validEventRequest())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, 2), ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), created.ID, 1))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventServiceListFilters(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, &userRepoStub{}, validator.New(), testLogger())

	first := validEventRequest()
	_, err := svc.Create(context.Background(), 1, first)
	require.NoError(t, err)

	second := validEventRequest()
	second.Title = "Food Drive"
	second.Category = "community"
	_, err = svc.Create(context.Background(), 1, second)
	require.NoError(t, err)

	category := "community"
	events, err := svc.List(context.Background(), dto.EventFilter{Category: &category})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Food Drive", events[0].Title)
}
