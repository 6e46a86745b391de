package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type partnerService struct {
	BaseService
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates a new partner service.
func NewPartnerService(repo portsrepo.PartnerRepositoryFacade, opts ...ServiceOption) portssvc.PartnerSvcFacade {
	return &partnerService{BaseService: newBaseService(opts), partnerRepo: repo}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: partner name is required", apperrors.ErrValidation)
	}
	if req.ProfitSharePct.IsNegative() || req.ProfitSharePct.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: profit share must be between 0 and 100", apperrors.ErrValidation)
	}

	partner := domain.Partner{
		PartnerID:      uuid.NewString(),
		Name:           name,
		Email:          strings.TrimSpace(req.Email),
		ProfitSharePct: req.ProfitSharePct,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		s.LogError(ctx, err, "Failed to save partner")
		return nil, err
	}

	s.LogInfo(ctx, "Partner created", slog.String("partner_id", partner.PartnerID))
	return &partner, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, asNamed(err, ErrPartnerNotFound, partnerID)
	}
	return partner, nil
}

func (s *partnerService) ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error) {
	limit, offset = normalizePage(limit, offset)
	return s.partnerRepo.ListPartners(ctx, limit, offset)
}
