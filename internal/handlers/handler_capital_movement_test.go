package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/core/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateMovement_Success() {
	partnerID := uuid.NewString()
	rate := decimal.RequireFromString("280")
	matchReq := mock.MatchedBy(func(r dto.CreateCapitalMovementRequest) bool {
		return r.PartnerID == partnerID && r.Currency == domain.USD && r.MovementType == domain.Contribution
	})
	suite.movements.On("CreateMovement", mock.Anything, matchReq, suite.userID).
		Return(&domain.CapitalMovement{
			MovementID:      uuid.NewString(),
			PartnerID:       partnerID,
			MovementType:    domain.Contribution,
			Amount:          decimal.NewFromInt(1000),
			Currency:        domain.USD,
			AmountBase:      decimal.NewFromInt(280000),
			FxRate:          &rate,
			TransactionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			AuditFields:     domain.NewAuditFields(suite.userID, time.Now()),
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/capital-movements", map[string]any{
		"partnerID":       partnerID,
		"movementType":    "CONTRIBUTION",
		"amount":          "1000",
		"currency":        "USD",
		"transactionDate": "2024-03-01",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CapitalMovementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AmountBase.Equal(decimal.NewFromInt(280000)))
	suite.Require().NotNil(resp.FxRate)
}

func (suite *HandlerTestSuite) TestCreateMovement_RejectsUnknownEnums() {
	w := suite.do(http.MethodPost, "/api/v1/capital-movements", map[string]any{
		"partnerID":       uuid.NewString(),
		"movementType":    "LOAN",
		"amount":          "10",
		"currency":        "EUR",
		"transactionDate": "2024-03-01",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ElementsMatch([]string{
		"movementType must be CONTRIBUTION or DRAW",
		"currency must be USD or PKR",
	}, suite.decodeError(w).Details)
}

func (suite *HandlerTestSuite) TestCreateMovement_ZeroAmount() {
	w := suite.do(http.MethodPost, "/api/v1/capital-movements", map[string]any{
		"partnerID":       uuid.NewString(),
		"movementType":    "DRAW",
		"amount":          "0",
		"currency":        "PKR",
		"transactionDate": "2024-03-01",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.NotEmpty(suite.decodeError(w).Details)
}

func (suite *HandlerTestSuite) TestCreateMovement_NoFxRateIsUnprocessable() {
	suite.movements.On("CreateMovement", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: 2024-03-01", services.ErrNoFxRate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/capital-movements", map[string]any{
		"partnerID":       uuid.NewString(),
		"movementType":    "CONTRIBUTION",
		"amount":          "10",
		"currency":        "USD",
		"transactionDate": "2024-03-01",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.decodeError(w).Error, "2024-03-01")
}

func (suite *HandlerTestSuite) TestLinkJournal_AlreadyLinked() {
	movementID := uuid.NewString()
	journalID := uuid.NewString()
	suite.movements.On("LinkJournal", mock.Anything, movementID, journalID, suite.userID).
		Return(nil, services.ErrMovementAlreadyLinked).Once()

	w := suite.do(http.MethodPost, "/api/v1/capital-movements/"+movementID+"/link", dto.LinkJournalRequest{JournalID: journalID})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListMovements_Filters() {
	params := dto.ListCapitalMovementsParams{MovementType: "DRAW", FromDate: "2024-01-01"}
	suite.movements.On("ListMovements", mock.Anything, params).Return([]domain.CapitalMovement{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/capital-movements?movementType=DRAW&fromDate=2024-01-01", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestPartnerBalance_AsOf() {
	partnerID := uuid.NewString()
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("280")
	suite.movements.On("GetPartnerBalance", mock.Anything, partnerID, &asOf).
		Return(&domain.PartnerBalance{
			PartnerID:       partnerID,
			AsOf:            &asOf,
			USDBalance:      decimal.NewFromInt(100),
			PKRBalance:      decimal.NewFromInt(5000),
			FxRate:          &rate,
			TotalBalancePKR: decimal.NewFromInt(33000),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/"+partnerID+"/balance?asOf=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PartnerBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.AsOf)
	suite.Equal("2024-03-31", *resp.AsOf)
	suite.True(resp.TotalBalancePKR.Equal(decimal.NewFromInt(33000)))
}

func (suite *HandlerTestSuite) TestPartnerBalance_CurrentWhenNoAsOf() {
	partnerID := uuid.NewString()
	suite.movements.On("GetPartnerBalance", mock.Anything, partnerID, (*time.Time)(nil)).
		Return(&domain.PartnerBalance{PartnerID: partnerID}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/"+partnerID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestPartnerBalance_BadAsOf() {
	w := suite.do(http.MethodGet, "/api/v1/partners/"+uuid.NewString()+"/balance?asOf=March", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPartnerBalance_UnknownPartner() {
	partnerID := uuid.NewString()
	suite.movements.On("GetPartnerBalance", mock.Anything, partnerID, (*time.Time)(nil)).
		Return(nil, services.ErrPartnerNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners/"+partnerID+"/balance", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
