package repository

import (
	"context"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListManagedUsers(ctx context.Context, managerID uuid.UUID) ([]entity.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, role, password, manager_id, company_id, created_at`

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) ListManagedUsers(ctx context.Context, managerID uuid.UUID) ([]entity.User, error) {
	users := make([]entity.User, 0)
	query := `SELECT ` + userColumns + ` FROM users WHERE manager_id = $1 AND id <> $1 ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &users, query, managerID); err != nil {
		return nil, fmt.Errorf("failed to list managed users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.User, error) {
	users := make([]entity.User, 0)
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &users, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	return users, nil
}
