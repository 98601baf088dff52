package repository

import (
	"context"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type TeamRepository interface {
	GetTeamWithMembers(ctx context.Context, teamID uuid.UUID) (*entity.Team, error)
}

type teamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetTeamWithMembers(ctx context.Context, teamID uuid.UUID) (*entity.Team, error) {
	var team entity.Team
	err := r.db.GetContext(ctx, &team, `SELECT id, name, company_id FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return nil, notFound(err, "team")
	}

	// membership order is stable so merged series sum members in the same order every time
	membersQuery := `
		SELECT user_id
		FROM team_members
		WHERE team_id = $1
		ORDER BY created_at ASC, user_id ASC`

	members := make([]uuid.UUID, 0)
	if err := r.db.SelectContext(ctx, &members, membersQuery, teamID); err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	team.MemberUserIDs = members

	return &team, nil
}
