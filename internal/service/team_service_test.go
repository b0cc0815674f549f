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
)

type teamRepoStub struct {
	teams  map[uint]models.Team
	nextID uint
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{teams: map[uint]models.Team{}, nextID: 1}
}

func (r *teamRepoStub) ListPublic(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	for _, team := range r.teams {
		if !team.IsPrivate {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *teamRepoStub) GetByID(ctx context.Context, id uint) (models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return models.Team{}, gorm.ErrRecordNotFound
	}
	return team, nil
}

func (r *teamRepoStub) Create(ctx context.Context, team *models.Team) error {
	team.ID = r.nextID
	team.CreatedAt = time.Now()
	r.nextID++
	r.teams[team.ID] = *team
	return nil
}

func (r *teamRepoStub) AddMember(ctx context.Context, team *models.Team, user models.User) error {
	stored := r.teams[team.ID]
	stored.Members = append(stored.Members, user)
	r.teams[team.ID] = stored
	return nil
}

func (r *teamRepoStub) RemoveMember(ctx context.Context, team *models.Team, user models.User) error {
	stored := r.teams[team.ID]
	members := stored.Members[:0]
	for _, member := range stored.Members {
		if member.ID != user.ID {
			members = append(members, member)
		}
	}
	stored.Members = members
	r.teams[team.ID] = stored
	return nil
}

func (r *teamRepoStub) Delete(ctx context.Context, team *models.Team) error {
	delete(r.teams, team.ID)
	return nil
}

func teamTestUsers() *userRepoStub {
	return &userRepoStub{users: map[uint]models.User{
		1: {ID: 1, Name: "Alice"},
		2: {ID: 2, Name: "Bob"},
	}}
}

func TestTeamServiceCreateAddsCreatorAsMember(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	team, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	require.Equal(t, uint(1), team.Members[0].ID)
}

func TestTeamServiceCreateSanitizesName(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	team, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{
		Name:        "Green Team <img src=x onerror=alert(1)>",
		Description: "Neighborhood cleanups",
	})
	require.NoError(t, err)
	require.Equal(t, "Green Team", team.Name)
}

func TestTeamServiceJoin(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)

	joined, err := svc.Join(context.Background(), created.ID, 2)
	require.NoError(t, err)
	require.Len(t, joined.Members, 2)
}

func TestTeamServiceJoinRejectsDuplicate(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), created.ID, 1)
	require.ErrorIs(t, err, ErrAlreadyMember)
}

func TestTeamServiceJoinRejectsPrivateTeam(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Inner Circle", Description: "Invite only crew", IsPrivate: true})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), created.ID, 2)
	require.ErrorIs(t, err, ErrPrivateTeam)
}

func TestTeamServiceLeave(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), created.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Leave(context.Background(), created.ID, 2))

	team, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
}

func TestTeamServiceLeaveRequiresMembership(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Leave(context.Background(), created.ID, 2), ErrNotMember)
}

func TestTeamServiceDeleteRequiresCreator(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	created, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, 2), ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), created.ID, 1))
}

func TestTeamServiceListPublicHidesPrivateTeams(t *testing.T) {
	repo := newTeamRepoStub()
	svc := NewTeamService(repo, teamTestUsers(), validator.New(), testLogger())

	_, err := svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Green Team", Description: "Neighborhood cleanups"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, dto.TeamCreateRequest{Name: "Inner Circle", Description: "Invite only crew", IsPrivate: true})
	require.NoError(t, err)

	teams, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Green Team", teams[0].Name)
}
