package user

import (
	"context"
	"testing"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ListManagedUsers(ctx context.Context, managerID uuid.UUID) ([]entity.User, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.User, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]entity.User), args.Error(1)
}

func storedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	return &entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    "ana@example.com",
		Role:     entity.RoleManager,
		Password: &hashed,
	}
}

func TestLogin(t *testing.T) {
	user := storedUser(t, "hunter22")
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	srv := NewUserService(repo, time.Hour)

	token, profile, err := srv.Login(context.Background(), "ana@example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, entity.RoleManager, profile.Role)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["user_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	user := storedUser(t, "hunter22")
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)
	srv := NewUserService(repo, time.Hour)

	_, _, err := srv.Login(context.Background(), "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = srv.Login(context.Background(), "ghost@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
