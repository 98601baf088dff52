package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/model/response"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	repo     repository.UserRepository
	tokenTTL time.Duration
}

func NewUserService(repo repository.UserRepository, tokenTTL time.Duration) *UserService {
	return &UserService{repo: repo, tokenTTL: tokenTTL}
}

// Login checks the password and returns a signed token with the user profile.
func (s *UserService) Login(ctx context.Context, email, password string) (string, response.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", response.User{}, ErrInvalidCredentials
		}
		return "", response.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Password == nil {
		return "", response.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return "", response.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", response.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, toResponse(user.ID, user.Email, user.Role, user.ManagerID, user.CompanyID), nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	return toResponse(user.ID, user.Email, user.Role, user.ManagerID, user.CompanyID), nil
}

func (s *UserService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func toResponse(id uuid.UUID, email, role string, managerID, companyID *uuid.UUID) response.User {
	return response.User{ID: id, Email: email, Role: role, ManagerID: managerID, CompanyID: companyID}
}
