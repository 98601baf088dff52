package service

import (
	"context"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	"github.com/gofrs/uuid"
)

type SnippetSource interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]entity.Snippet, error)
}

// Directory resolves who belongs to a view. It never holds scores.
type Directory interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*entity.Team, error)
	ListManagedUsers(ctx context.Context, managerID uuid.UUID) ([]entity.User, error)
	ListCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]entity.User, error)
}

type SkillStore interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Skill, error)
	ListRatings(ctx context.Context, userIDs []uuid.UUID) ([]entity.SkillRating, error)
}

type directory struct {
	users repository.UserRepository
	teams repository.TeamRepository
}

func NewDirectory(users repository.UserRepository, teams repository.TeamRepository) *directory {
	return &directory{users: users, teams: teams}
}

func (d *directory) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return d.users.GetByID(ctx, userID)
}

func (d *directory) GetTeam(ctx context.Context, teamID uuid.UUID) (*entity.Team, error) {
	return d.teams.GetTeamWithMembers(ctx, teamID)
}

func (d *directory) ListManagedUsers(ctx context.Context, managerID uuid.UUID) ([]entity.User, error) {
	return d.users.ListManagedUsers(ctx, managerID)
}

func (d *directory) ListCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]entity.User, error) {
	return d.users.ListByCompany(ctx, companyID)
}

// UpstreamFetchError is a failed snippet fetch for one member of a view.
type UpstreamFetchError struct {
	UserID uuid.UUID
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("failed to fetch snippets for user %s: %v", e.UserID, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}
