package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/volunteerhub/volunteerhub-api/internal/dto"
	"github.com/volunteerhub/volunteerhub-api/internal/models"
	"github.com/volunteerhub/volunteerhub-api/internal/observability"
	"github.com/volunteerhub/volunteerhub-api/internal/repository"
)

// ErrImpactLogNotFound indicates the referenced impact log does not exist.
var ErrImpactLogNotFound = errors.New("impact log not found")

// ErrSelfVerification indicates a user attempted to verify their own hours.
var ErrSelfVerification = errors.New("cannot verify your own hours")

// ErrUserNotFound indicates the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

const leaderboardCacheKey = "leaderboard:top"

// CertificateIssuer produces a durable certificate artifact and returns its
// filename. Implemented by pkg/certificate; injected so the aggregation core
// can be tested without rendering images.
type CertificateIssuer interface {
	Issue(ctx context.Context, userID uint, userName string, totalHours float64) (string, error)
}

// ImpactConfig carries the tunable values of the points computation.
type ImpactConfig struct {
	PointsPerHour   float64
	Milestones      []float64
	LeaderboardSize int
	CacheTTL        time.Duration
}

// ImpactService orchestrates hour logging, verification, point computation and
// leaderboard ranking.
type ImpactService interface {
	LogHours(ctx context.Context, userID uint, payload dto.LogHoursRequest) (dto.ImpactLogResponse, error)
	VerifyHours(ctx context.Context, verifierID uint, payload dto.VerifyHoursRequest) (dto.ImpactLogResponse, error)
	GetUserPoints(ctx context.Context, userID uint) (dto.UserPointsResponse, error)
	GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

type impactService struct {
	impacts      repository.ImpactRepository
	users        repository.UserRepository
	certificates CertificateIssuer
	cache        *redis.Client
	cfg          ImpactConfig
	validator    *validator.Validate
	logger       zerolog.Logger
}

// NewImpactService constructs an ImpactService instance.
func NewImpactService(impacts repository.ImpactRepository, users repository.UserRepository, certificates CertificateIssuer, cache *redis.Client, cfg ImpactConfig, validate *validator.Validate, logger zerolog.Logger) ImpactService {
	if cfg.PointsPerHour <= 0 {
		cfg.PointsPerHour = 5
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}

	return &impactService{
		impacts:      impacts,
		users:        users,
		certificates: certificates,
		cache:        cache,
		cfg:          cfg,
		validator:    validate,
		logger:       logger.With().Str("component", "impact_service").Logger(),
	}
}

func (s *impactService) LogHours(ctx context.Context, userID uint, payload dto.LogHoursRequest) (dto.ImpactLogResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ImpactLogResponse{}, err
	}

	log := models.ImpactLog{
		UserID:  userID,
		EventID: payload.EventID,
		Hours:   payload.Hours,
		Status:  models.ImpactStatusPending,
	}

	if err := s.impacts.Create(ctx, &log); err != nil {
		return dto.ImpactLogResponse{}, err
	}

	s.logger.Info().Uint("log_id", log.ID).Uint("user_id", userID).Float64("hours", payload.Hours).Msg("hours logged")

	return dto.NewImpactLogResponse(log), nil
}

func (s *impactService) VerifyHours(ctx context.Context, verifierID uint, payload dto.VerifyHoursRequest) (dto.ImpactLogResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ImpactLogResponse{}, err
	}

	log, err := s.impacts.GetByID(ctx, payload.LogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ImpactLogResponse{}, ErrImpactLogNotFound
		}
		return dto.ImpactLogResponse{}, err
	}

	if log.UserID == verifierID {
		return dto.ImpactLogResponse{}, ErrSelfVerification
	}

	// Verified is terminal: re-verifying is a no-op and keeps the original verifier.
	if log.IsVerified() {
		return dto.NewImpactLogResponse(log), nil
	}

	log.Status = models.ImpactStatusVerified
	log.VerifiedByID = &verifierID

	if err := s.impacts.Update(ctx, &log); err != nil {
		return dto.ImpactLogResponse{}, err
	}

	s.logger.Info().Uint("log_id", log.ID).Uint("verifier_id", verifierID).Msg("hours verified")

	return dto.NewImpactLogResponse(log), nil
}

func (s *impactService) GetUserPoints(ctx context.Context, userID uint) (dto.UserPointsResponse, error) {
	logs, err := s.impacts.ListVerifiedByUser(ctx, userID)
	if err != nil {
		return dto.UserPointsResponse{}, err
	}

	var totalHours float64
	for _, log := range logs {
		totalHours += log.Hours
	}

	response := dto.UserPointsResponse{
		UserID:      userID,
		TotalHours:  totalHours,
		TotalPoints: totalHours * s.cfg.PointsPerHour,
	}

	if !s.atMilestone(totalHours) {
		return response, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserPointsResponse{}, ErrUserNotFound
		}
		return dto.UserPointsResponse{}, err
	}

	filename, err := s.certificates.Issue(ctx, user.ID, user.Name, totalHours)
	if err != nil {
		return dto.UserPointsResponse{}, fmt.Errorf("failed to issue certificate: %w", err)
	}

	observability.CertificatesIssued().Inc()
	response.Certificate = &filename

	return response, nil
}

func (s *impactService) GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []dto.LeaderboardEntry
			if unmarshalErr := json.Unmarshal([]byte(cached), &entries); unmarshalErr == nil {
				s.logger.Debug().Msg("leaderboard cache hit")
				return entries, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read leaderboard cache")
		}
	}

	rows, err := s.impacts.LeaderboardTop(ctx, s.cfg.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.LeaderboardEntry{UserID: row.UserID, TotalHours: row.TotalHours})
	}

	if s.cache != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			// Verifications landing within CacheTTL stay invisible until the
			// entry expires; readers tolerate that window.
			if err := s.cache.Set(ctx, leaderboardCacheKey, payload, s.cfg.CacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store leaderboard cache")
			}
		}
	}

	return entries, nil
}

// atMilestone checks for an exact milestone hit. Totals that jump past a
// threshold in a single verification do not trigger it.
func (s *impactService) atMilestone(totalHours float64) bool {
	for _, milestone := range s.cfg.Milestones {
		if totalHours == milestone {
			return true
		}
	}
	return false
}
