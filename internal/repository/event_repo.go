package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// EventFilter allows narrowing event queries.
type EventFilter struct {
	Category *string
	Location *string
}

// EventRepository defines data operations for events.
type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	AddAttendee(ctx context.Context, event *models.Event, user models.User) error
	Delete(ctx context.Context, event *models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository instantiates the repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Event{}).
		Preload("CreatedBy").
		Preload("Attendees")
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	query := r.baseQuery(ctx)

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if filter.Location != nil {
		query = query.Where("location = ?", *filter.Location)
	}

	var events []models.Event
	if err := query.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	if err := r.baseQuery(ctx).First(&event, id).Error; err != nil {
		return models.Event{}, err
	}

	return event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) AddAttendee(ctx context.Context, event *models.Event, user models.User) error {
	return r.db.WithContext(ctx).Model(event).Association("Attendees").Append(&user)
}

func (r *eventRepository) Delete(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Select("Attendees").Delete(event).Error
}
