package repository

import (
	"context"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type SkillRepository interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Skill, error)
	ListRatings(ctx context.Context, userIDs []uuid.UUID) ([]entity.SkillRating, error)
}

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) *skillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Skill, error) {
	skills := make([]entity.Skill, 0)
	query := `SELECT id, skill_name, company_id FROM skills WHERE company_id = $1 ORDER BY skill_name`
	if err := r.db.SelectContext(ctx, &skills, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (r *skillRepository) ListRatings(ctx context.Context, userIDs []uuid.UUID) ([]entity.SkillRating, error) {
	ratings := make([]entity.SkillRating, 0)
	if len(userIDs) == 0 {
		return ratings, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, skill_id, score, created_at
		FROM skill_ratings
		WHERE user_id IN (?)
		ORDER BY created_at`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build ratings query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &ratings, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list skill ratings: %w", err)
	}
	return ratings, nil
}
