package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// TeamRepository defines data operations for teams.
type TeamRepository interface {
	ListPublic(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id uint) (models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	AddMember(ctx context.Context, team *models.Team, user models.User) error
	RemoveMember(ctx context.Context, team *models.Team, user models.User) error
	Delete(ctx context.Context, team *models.Team) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository instantiates the repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Team{}).
		Preload("CreatedBy").
		Preload("Members")
}

func (r *teamRepository) ListPublic(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.baseQuery(ctx).
		Where("is_private = ?", false).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uint) (models.Team, error) {
	var team models.Team
	if err := r.baseQuery(ctx).First(&team, id).Error; err != nil {
		return models.Team{}, err
	}

	return team, nil
}

func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) AddMember(ctx context.Context, team *models.Team, user models.User) error {
	return r.db.WithContext(ctx).Model(team).Association("Members").Append(&user)
}

func (r *teamRepository) RemoveMember(ctx context.Context, team *models.Team, user models.User) error {
	return r.db.WithContext(ctx).Model(team).Association("Members").Delete(&user)
}

func (r *teamRepository) Delete(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Select("Members").Delete(team).Error
}
