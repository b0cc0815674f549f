package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/models"
)

// LeaderboardRow is one aggregated leaderboard entry produced by the store.
type LeaderboardRow struct {
	UserID     uint    `json:"user_id"`
	TotalHours float64 `json:"total_hours"`
}

// ImpactRepository defines data operations for impact logs.
type ImpactRepository interface {
	Create(ctx context.Context, log *models.ImpactLog) error
	GetByID(ctx context.Context, id uint) (models.ImpactLog, error)
	Update(ctx context.Context, log *models.ImpactLog) error
	ListVerifiedByUser(ctx context.Context, userID uint) ([]models.ImpactLog, error)
	LeaderboardTop(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

type impactRepository struct {
	db *gorm.DB
}

// NewImpactRepository instantiates the repository.
func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &impactRepository{db: db}
}

func (r *impactRepository) Create(ctx context.Context, log *models.ImpactLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *impactRepository) GetByID(ctx context.Context, id uint) (models.ImpactLog, error) {
	var log models.ImpactLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return models.ImpactLog{}, err
	}

	return log, nil
}

func (r *impactRepository) Update(ctx context.Context, log *models.ImpactLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *impactRepository) ListVerifiedByUser(ctx context.Context, userID uint) ([]models.ImpactLog, error) {
	var logs []models.ImpactLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", models.ImpactStatusVerified).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// LeaderboardTop aggregates verified hours per user. Ties are broken by
// ascending user id so repeated reads stay deterministic.
func (r *impactRepository) LeaderboardTop(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).
		Model(&models.ImpactLog{}).
		Select("user_id, SUM(hours) AS total_hours").
		Where("status = ?", models.ImpactStatusVerified).
		Group("user_id").
		Order("total_hours DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
