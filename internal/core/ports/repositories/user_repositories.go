package repositories

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// UserReader defines read operations for users
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for users
type UserWriter interface {
	// SaveUser inserts a user. A reused username yields ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
