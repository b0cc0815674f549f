package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// HelpRequestFilter allows narrowing help request queries.
type HelpRequestFilter struct {
	Urgency  *string
	Location *string
}

// HelpRequestRepository defines data operations for help requests.
type HelpRequestRepository interface {
	List(ctx context.Context, filter HelpRequestFilter) ([]models.HelpRequest, error)
	GetByID(ctx context.Context, id uint) (models.HelpRequest, error)
	Create(ctx context.Context, request *models.HelpRequest) error
	AddVolunteer(ctx context.Context, request *models.HelpRequest, user models.User) error
	Delete(ctx context.Context, request *models.HelpRequest) error
}

type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository instantiates the repository.
func NewHelpRequestRepository(db *gorm.DB) HelpRequestRepository {
	return &helpRequestRepository{db: db}
}

func (r *helpRequestRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.HelpRequest{}).
		Preload("CreatedBy").
		Preload("Volunteers")
}

func (r *helpRequestRepository) List(ctx context.Context, filter HelpRequestFilter) ([]models.HelpRequest, error) {
	query := r.baseQuery(ctx)

	if filter.Urgency != nil {
		query = query.Where("urgency = ?", *filter.Urgency)
	}

	if filter.Location != nil {
		query = query.Where("location = ?", *filter.Location)
	}

	var requests []models.HelpRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *helpRequestRepository) GetByID(ctx context.Context, id uint) (models.HelpRequest, error) {
	var request models.HelpRequest
	if err := r.baseQuery(ctx).First(&request, id).Error; err != nil {
		return models.HelpRequest{}, err
	}

	return request, nil
}

func (r *helpRequestRepository) Create(ctx context.Context, request *models.HelpRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *helpRequestRepository) AddVolunteer(ctx context.Context, request *models.HelpRequest, user models.User) error {
	return r.db.WithContext(ctx).Model(request).Association("Volunteers").Append(&user)
}

func (r *helpRequestRepository) Delete(ctx context.Context, request *models.HelpRequest) error {
	return r.db.WithContext(ctx).Select("Volunteers").Delete(request).Error
}
