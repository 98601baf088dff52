package repository

import (
	"context"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type SnippetRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error)
}

type snippetRepository struct {
	db *sqlx.DB
}

func NewSnippetRepository(db *sqlx.DB) *snippetRepository {
	return &snippetRepository{db: db}
}

// ListByOwner returns the owner's scored snippets. Unscored drafts never reach analytics.
func (r *snippetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error) {
	query := `
		SELECT id, owner_id, snippet_date, score, green, orange, red, text, action_text
		FROM snippets
		WHERE owner_id = $1 AND score IS NOT NULL
		ORDER BY snippet_date, created_at`

	snippets := make([]entity.Snippet, 0)
	if err := r.db.SelectContext(ctx, &snippets, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}

	return snippets, nil
}
