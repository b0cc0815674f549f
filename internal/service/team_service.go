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

// ErrTeamNotFound indicates a team could not be found.
var ErrTeamNotFound = errors.New("team not found")

// ErrAlreadyMember indicates the user already belongs to the team.
var ErrAlreadyMember = errors.New("already a member of this team")

// ErrNotMember indicates the user does not belong to the team.
var ErrNotMember = errors.New("not a member of this team")

// ErrPrivateTeam indicates the team requires an invite to join.
var ErrPrivateTeam = errors.New("private team, invite required")

// TeamService orchestrates team workflows.
type TeamService interface {
	Create(ctx context.Context, creatorID uint, payload dto.TeamCreateRequest) (dto.TeamResponse, error)
	ListPublic(ctx context.Context) ([]dto.TeamResponse, error)
	GetByID(ctx context.Context, id uint) (dto.TeamResponse, error)
	Join(ctx context.Context, id, userID uint) (dto.TeamResponse, error)
	Leave(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id, userID uint) error
}

type teamService struct {
	teams     repository.TeamRepository
	users     repository.UserRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewTeamService constructs a TeamService instance.
func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) TeamService {
	return &teamService{
		teams:     teams,
		users:     users,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "team_service").Logger(),
	}
}

func (s *teamService) Create(ctx context.Context, creatorID uint, payload dto.TeamCreateRequest) (dto.TeamResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeamResponse{}, err
	}

	creator, err := s.users.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeamResponse{}, ErrUserNotFound
		}
		return dto.TeamResponse{}, err
	}

	// The creator is the first member.
	team := models.Team{
		Name:        strings.TrimSpace(s.sanitizer.Sanitize(payload.Name)),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		IsPrivate:   payload.IsPrivate,
		CreatedByID: creatorID,
		Members:     []models.User{creator},
	}

	if err := s.teams.Create(ctx, &team); err != nil {
		return dto.TeamResponse{}, err
	}

	created, err := s.teams.GetByID(ctx, team.ID)
	if err != nil {
		return dto.TeamResponse{}, err
	}

	s.logger.Info().Uint("team_id", created.ID).Uint("creator_id", creatorID).Msg("team created")

	return dto.NewTeamResponse(created), nil
}

func (s *teamService) ListPublic(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.teams.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewTeamResponseSlice(teams), nil
}

func (s *teamService) GetByID(ctx context.Context, id uint) (dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return dto.TeamResponse{}, err
	}

	return dto.NewTeamResponse(team), nil
}

func (s *teamService) Join(ctx context.Context, id, userID uint) (dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return dto.TeamResponse{}, err
	}

	if team.IsPrivate {
		return dto.TeamResponse{}, ErrPrivateTeam
	}

	if team.HasMember(userID) {
		return dto.TeamResponse{}, ErrAlreadyMember
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeamResponse{}, ErrUserNotFound
		}
		return dto.TeamResponse{}, err
	}

	if err := s.teams.AddMember(ctx, &team, user); err != nil {
		return dto.TeamResponse{}, err
	}

	joined, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return dto.TeamResponse{}, err
	}

	s.logger.Info().Uint("team_id", id).Uint("user_id", userID).Msg("user joined team")

	return dto.NewTeamResponse(joined), nil
}

func (s *teamService) Leave(ctx context.Context, id, userID uint) error {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return err
	}

	if !team.HasMember(userID) {
		return ErrNotMember
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.teams.RemoveMember(ctx, &team, user); err != nil {
		return err
	}

	s.logger.Info().Uint("team_id", id).Uint("user_id", userID).Msg("user left team")

	return nil
}

func (s *teamService) Delete(ctx context.Context, id, userID uint) error {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return err
	}

	if team.CreatedByID != userID {
		return ErrForbidden
	}

	if err := s.teams.Delete(ctx, &team); err != nil {
		return err
	}

	s.logger.Info().Uint("team_id", id).Msg("team deleted")

	return nil
}

func (s *teamService) getTeam(ctx context.Context, id uint) (models.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Team{}, ErrTeamNotFound
		}
		return models.Team{}, err
	}

	return team, nil
}
