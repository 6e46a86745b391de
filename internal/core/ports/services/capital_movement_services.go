package services

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
)

// CapitalMovementReaderSvc defines read operations for partner capital
type CapitalMovementReaderSvc interface {
	GetMovement(ctx context.Context, movementID string) (*domain.CapitalMovement, error)
	ListMovements(ctx context.Context, params dto.ListCapitalMovementsParams) ([]domain.CapitalMovement, error)
	ListByPartner(ctx context.Context, partnerID string) ([]domain.CapitalMovement, error)

	// GetPartnerBalance nets a partner's movements up to asOf, or all of them when asOf is nil.
	GetPartnerBalance(ctx context.Context, partnerID string, asOf *time.Time) (*domain.PartnerBalance, error)
}

// CapitalMovementWriterSvc defines write operations for partner capital
type CapitalMovementWriterSvc interface {
	CreateMovement(ctx context.Context, req dto.CreateCapitalMovementRequest, userID string) (*domain.CapitalMovement, error)

	// LinkJournal records the journal that books a movement. A movement links once.
	LinkJournal(ctx context.Context, movementID, journalID, userID string) (*domain.CapitalMovement, error)
}

// CapitalMovementSvcFacade combines all capital movement service interfaces
type CapitalMovementSvcFacade interface {
	CapitalMovementReaderSvc
	CapitalMovementWriterSvc
}
