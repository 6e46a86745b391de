package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/appdotbuilder/finops-audit-app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade, opts ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{BaseService: newBaseService(opts), userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a user. With an empty creatorUserID the user is recorded as self-created.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	if creatorUserID == "" {
		creatorUserID = userID
	}
	user := domain.User{
		UserID:       userID,
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		AuditFields:  domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", userID), slog.String("username", username))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, asNamed(err, ErrUserNotFound, userID)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, asNamed(err, ErrUserNotFound, username)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	limit, offset = normalizePage(limit, offset)
	return s.userRepo.FindUsers(ctx, limit, offset)
}
