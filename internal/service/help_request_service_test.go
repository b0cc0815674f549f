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

type helpRequestRepoStub struct {
	requests map[uint]models.HelpRequest
	nextID   uint
}

func newHelpRequestRepoStub() *helpRequestRepoStub {
	return &helpRequestRepoStub{requests: map[uint]models.HelpRequest{}, nextID: 1}
}

func (r *helpRequestRepoStub) List(ctx context.Context, filter repository.HelpRequestFilter) ([]models.HelpRequest, error) {
	var requests []models.HelpRequest
	for _, request := range r.requests {
		if filter.Urgency != nil && request.Urgency != *filter.Urgency {
			continue
		}
		if filter.Location != nil && request.Location != *filter.Location {
			continue
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *helpRequestRepoStub) GetByID(ctx context.Context, id uint) (models.HelpRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return models.HelpRequest{}, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (r *helpRequestRepoStub) Create(ctx context.Context, request *models.HelpRequest) error {
	request.ID = r.nextID
	request.CreatedAt = time.Now()
	r.nextID++
	r.requests[request.ID] = *request
	return nil
}

func (r *helpRequestRepoStub) AddVolunteer(ctx context.Context, request *models.HelpRequest, user models.User) error {
	stored := r.requests[request.ID]
	stored.Volunteers = append(stored.Volunteers, user)
	r.requests[request.ID] = stored
	return nil
}

func (r *helpRequestRepoStub) Delete(ctx context.Context, request *models.HelpRequest) error {
	delete(r.requests, request.ID)
	return nil
}

func validHelpRequest() dto.HelpRequestCreateRequest {
	return dto.HelpRequestCreateRequest{
		Title:       "Grocery run",
		Description: "Need someone to pick up groceries for an elderly neighbor",
		Urgency:     models.UrgencyMedium,
		Location:    "Elm Street",
	}
}

func TestHelpRequestServiceCreate(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	request, err := svc.Create(context.Background(), 1, validHelpRequest())
	require.NoError(t, err)
	require.NotZero(t, request.ID)
	require.Equal(t, models.UrgencyMedium, request.Urgency)
}

func TestHelpRequestServiceCreateRejectsUnknownUrgency(t *testing.T) {
	svc := NewHelpRequestService(newHelpRequestRepoStub(), teamTestUsers(), validator.New(), testLogger())

	payload := validHelpRequest()
	payload.Urgency = "whenever"

	_, err := svc.Create(context.Background(), 1, payload)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestHelpRequestServiceCreateSanitizesTitle(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	payload := validHelpRequest()
	payload.Title = "Grocery run <script>steal()</script>"

	request, err := svc.Create(context.Background(), 1, payload)
	require.NoError(t, err)
	require.Equal(t, "Grocery run", request.Title)
}

func TestHelpRequestServiceVolunteer(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validHelpRequest())
	require.NoError(t, err)

	updated, err := svc.Volunteer(context.Background(), created.ID, 2)
	require.NoError(t, err)
	require.Len(t, updated.Volunteers, 1)
	require.Equal(t, uint(2), updated.Volunteers[0].ID)
}

func TestHelpRequestServiceVolunteerRejectsDuplicate(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validHelpRequest())
	require.NoError(t, err)

	_, err = svc.Volunteer(context.Background(), created.ID, 2)
	require.NoError(t, err)

	_, err = svc.Volunteer(context.Background(), created.ID, 2)
	require.ErrorIs(t, err, ErrAlreadyVolunteered)
}

func TestHelpRequestServiceVolunteerNotFound(t *testing.T) {
	svc := NewHelpRequestService(newHelpRequestRepoStub(), teamTestUsers(), validator.New(), testLogger())

	_, err := svc.Volunteer(context.Background(), 99, 2)
	require.ErrorIs(t, err, ErrHelpRequestNotFound)
}

func TestHelpRequestServiceDeleteRequiresCreator(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, validHelpRequest())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, 2), ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), created.ID, 1))
}

func TestHelpRequestServiceListFiltersByUrgency(t *testing.T) {
	repo := newHelpRequestRepoStub()
	svc := NewHelpRequestService(repo, teamTestUsers(), validator.New(), testLogger())

	_, err := svc.Create(context.Background(), 1, validHelpRequest())
	require.NoError(t, err)

	urgent := validHelpRequest()
	urgent.Title = "Burst pipe"
	urgent.Urgency = models.UrgencyUrgent
	_, err = svc.Create(context.Background(), 1, urgent)
	require.NoError(t, err)

	filter := models.UrgencyUrgent
	requests, err := svc.List(context.Background(), dto.HelpRequestFilter{Urgency: &filter})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.Equal(t, "Burst pipe", requests[0].Title)
}
