package services

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// CreateUser stores a user with a bcrypt hash of the given password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
