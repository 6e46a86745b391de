package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/appdotbuilder/finops-audit-app/internal/utils"
)

// authService checks passwords and issues JWT access tokens.
type authService struct {
	BaseService
	users    portssvc.UserReaderSvc
	settings utils.TokenSettings
}

// NewAuthService creates a new auth service.
func NewAuthService(users portssvc.UserReaderSvc, settings utils.TokenSettings, opts ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{BaseService: newBaseService(opts), users: users, settings: settings}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.GetLogger(ctx).Warn("Password mismatch", slog.String("user_id", user.UserID))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.settings, s.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
