package repositories

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// CapitalMovementFilter narrows a movement listing. Nil fields are not applied.
type CapitalMovementFilter struct {
	PartnerID    *string
	MovementType *domain.MovementType
	FromDate     *time.Time
	ToDate       *time.Time
}

// CapitalMovementReader defines read operations for capital movements
type CapitalMovementReader interface {
	FindCapitalMovementByID(ctx context.Context, movementID string) (*domain.CapitalMovement, error)

	// ListCapitalMovements returns matching movements, newest transaction date first.
	ListCapitalMovements(ctx context.Context, filter CapitalMovementFilter) ([]domain.CapitalMovement, error)
}

// CapitalMovementWriter defines write operations for capital movements
type CapitalMovementWriter interface {
	SaveCapitalMovement(ctx context.Context, movement domain.CapitalMovement) error

	FindCapitalMovementByIDForUpdate(ctx context.Context, movementID string) (*domain.CapitalMovement, error)

	// LinkCapitalMovementJournal sets the journal a movement was booked through.
	LinkCapitalMovementJournal(ctx context.Context, movementID, journalID, userID string, now time.Time) error
}

// CapitalMovementRepositoryFacade combines all capital movement repository interfaces
type CapitalMovementRepositoryFacade interface {
	CapitalMovementReader
	CapitalMovementWriter
}
